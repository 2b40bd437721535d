package repository

import "context"

// TransactionManager runs fn in one database transaction. Returning an error
// from fn rolls back every write made through the factory it was given.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	MerchantRepo() MerchantRepository
	ProductRepo() ProductRepository
	TagRepo() TagRepository
}
