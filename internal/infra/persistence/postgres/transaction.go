package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. An error or panic from fn rolls the
// transaction back; the panic is re-raised after rollback.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})

	return errors.WithStack(err)
}

// txRepositories builds repositories on a transaction handle.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) MerchantRepo() repository.MerchantRepository {
	return NewMerchantRepository(r.tx)
}

func (r txRepositories) ProductRepo() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) TagRepo() repository.TagRepository {
	return NewTagRepository(r.tx)
}
