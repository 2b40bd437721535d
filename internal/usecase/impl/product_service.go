package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	merchantRepo repository.MerchantRepository
	policy       usecase.AccessPolicy
	events       *catalogEvents
	text         textCleaner
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	MerchantRepo repository.MerchantRepository
	Policy       usecase.AccessPolicy
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder `optional:"true"`
	Sanitizer    service.TextSanitizer   `optional:"true"`
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		merchantRepo: params.MerchantRepo,
		policy:       params.Policy,
		events:       &catalogEvents{publisher: params.Publisher, metrics: params.Metrics, logger: params.Logger},
		text:         textCleaner{sanitizer: params.Sanitizer},
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct creates a product with its initial tags in one transaction.
// An unknown tag code aborts the whole creation.
func (srv *productService) CreateProduct(ctx context.Context, principal *entity.User, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.policy.Authorize(principal, entity.OpProductCreate); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	name := srv.text.clean(input.Name)
	if err := validateProductFields(&name, &input.Price); err != nil {
		return nil, err
	}

	product := &entity.Product{
		MerchantID:  input.MerchantID,
		Name:        name,
		Description: srv.text.cleanPtr(input.Description),
		Price:       input.Price,
		Active:      true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		merchant, err := repoFactory.MerchantRepo().FindByID(ctx, input.MerchantID)
		if err != nil {
			if errors.Is(err, repository.ErrMerchantNotFound) {
				return domainerrors.ErrMerchantNotFound
			}

			return errors.Wrap(err, "failed to find merchant")
		}
		if err := srv.policy.RequireOwner(principal, merchant); err != nil {
			return err
		}

		tags, err := resolveTags(ctx, repoFactory.TagRepo(), input.TagCodes)
		if err != nil {
			return err
		}
		product.Tags = tags

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID.String()), slog.Int("tag_count", len(product.Tags)))
	srv.events.emit(ctx, productEvent(service.EventProductCreated, product))

	return product, nil
}

// ListProducts returns every product matching filter, in insertion order.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if filter.Matches(product) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translateProductLookup(err)
	}

	return product, nil
}

// ListProductsByMerchant is public; an unknown merchant simply has no products.
func (srv *productService) ListProductsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchant products")
	}

	return products, nil
}

// ListMyProducts returns the products of the principal's storefront, or none
// if the principal has not opened one yet.
func (srv *productService) ListMyProducts(ctx context.Context, principal *entity.User) ([]*entity.Product, error) {
	if err := srv.policy.Authorize(principal, entity.OpProductListMine); err != nil {
		return nil, err
	}

	merchant, err := srv.merchantRepo.FindByUserID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return []*entity.Product{}, nil
		}

		return nil, errors.Wrap(err, "failed to find merchant by user")
	}

	return srv.ListProductsByMerchant(ctx, merchant.ID)
}

// UpdateProduct applies the supplied fields only. A supplied tag list replaces the whole set.
func (srv *productService) UpdateProduct(ctx context.Context, principal *entity.User, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := srv.policy.Authorize(principal, entity.OpProductUpdate); err != nil {
		return nil, err
	}
	changes := usecase.UpdateProductInput{}
	if input != nil {
		changes = *input
	}
	changes.Name = srv.text.cleanPtr(changes.Name)
	changes.Description = srv.text.cleanPtr(changes.Description)
	if err := validateProductFields(changes.Name, changes.Price); err != nil {
		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := srv.loadOwnedProduct(ctx, repoFactory, principal, productID)
		if err != nil {
			return err
		}

		if applyProductFields(product, &changes) {
			if err := productRepo.Update(ctx, product); err != nil {
				return err
			}
		}

		if changes.TagCodes != nil {
			tags, err := resolveTags(ctx, repoFactory.TagRepo(), *changes.TagCodes)
			if err != nil {
				return err
			}
			if err := productRepo.ReplaceTags(ctx, product.ID, tagIDs(tags)); err != nil {
				return err
			}
		}

		updated, err = productRepo.FindByID(ctx, product.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, err
	}

	srv.events.emit(ctx, productEvent(service.EventProductUpdated, updated))

	return updated, nil
}

// DeleteProduct removes the product and its tag associations.
func (srv *productService) DeleteProduct(ctx context.Context, principal *entity.User, productID uuid.UUID) error {
	if err := srv.policy.Authorize(principal, entity.OpProductDelete); err != nil {
		return err
	}

	var deleted *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := srv.loadOwnedProduct(ctx, repoFactory, principal, productID)
		if err != nil {
			return err
		}
		deleted = product

		return translateProductLookup(repoFactory.ProductRepo().Delete(ctx, product.ID))
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", productID.String()))
	srv.events.emit(ctx, productEvent(service.EventProductDeleted, deleted))

	return nil
}

// AddTags unions the given tags into the product's tag set.
func (srv *productService) AddTags(ctx context.Context, principal *entity.User, productID uuid.UUID, codes []string) (*entity.Product, error) {
	if err := srv.policy.Authorize(principal, entity.OpProductAddTags); err != nil {
		return nil, err
	}

	var (
		result  *entity.Product
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := srv.loadOwnedProduct(ctx, repoFactory, principal, productID)
		if err != nil {
			return err
		}

		tags, err := resolveTags(ctx, repoFactory.TagRepo(), codes)
		if err != nil {
			return err
		}

		missing := make([]*entity.DietaryTag, 0, len(tags))
		for _, tag := range tags {
			if !product.HasTag(tag.Code) {
				missing = append(missing, tag)
			}
		}
		if len(missing) == 0 {
			result = product

			return nil
		}

		if err := productRepo.AddTags(ctx, product.ID, tagIDs(missing)); err != nil {
			return err
		}
		changed = true

		result, err = productRepo.FindByID(ctx, product.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.events.emit(ctx, productEvent(service.EventProductTagged, result))
	}

	return result, nil
}

// RemoveTag drops one tag from the product. The code must exist in the
// vocabulary; removing a tag the product does not carry changes nothing.
func (srv *productService) RemoveTag(ctx context.Context, principal *entity.User, productID uuid.UUID, code string) (*entity.Product, error) {
	if err := srv.policy.Authorize(principal, entity.OpProductRemoveTag); err != nil {
		return nil, err
	}

	var (
		result  *entity.Product
		changed bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := srv.loadOwnedProduct(ctx, repoFactory, principal, productID)
		if err != nil {
			return err
		}

		tags, err := resolveTags(ctx, repoFactory.TagRepo(), []string{code})
		if err != nil {
			return err
		}

		if !product.HasTag(tags[0].Code) {
			result = product

			return nil
		}

		if err := productRepo.RemoveTag(ctx, product.ID, tags[0].ID); err != nil {
			return err
		}
		changed = true

		result, err = productRepo.FindByID(ctx, product.ID)

		return errors.Wrap(err, "failed to reload product")
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.events.emit(ctx, productEvent(service.EventProductTagged, result))
	}

	return result, nil
}

// loadOwnedProduct is the single ownership check shared by every product mutation:
// the product's merchant must belong to the principal.
func (srv *productService) loadOwnedProduct(ctx context.Context, repoFactory repository.RepositoryFactory, principal *entity.User, productID uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		return nil, translateProductLookup(err)
	}

	merchant, err := repoFactory.MerchantRepo().FindByID(ctx, product.MerchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			srv.log(ctx).Error("Product references a missing merchant",
				slog.String("product_id", product.ID.String()),
				slog.String("merchant_id", product.MerchantID.String()),
			)

			return nil, domainerrors.ErrInternalError.WrapMessage("product merchant is missing")
		}

		return nil, errors.Wrap(err, "failed to find product merchant")
	}

	if err := srv.policy.RequireOwner(principal, merchant); err != nil {
		return nil, err
	}

	return product, nil
}

// resolveTags maps codes to vocabulary entries, dropping duplicates and failing on the first unknown code.
func resolveTags(ctx context.Context, tagRepo repository.TagRepository, codes []string) ([]*entity.DietaryTag, error) {
	tags := make([]*entity.DietaryTag, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))

	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		tag, err := tagRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrTagNotFound) {
				return nil, domainerrors.ErrTagNotFound.WithDetails("tag '" + code + "' not found")
			}

			return nil, errors.Wrapf(err, "failed to find tag %q", code)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func translateProductLookup(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "failed to access product")
}

func validateProductFields(name *string, price *float64) error {
	if name != nil {
		switch n := utf8.RuneCountInString(*name); {
		case n == 0:
			return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		case n > entity.MaxProductNameLength:
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("name must be at most %d characters", entity.MaxProductNameLength))
		}
	}
	if price != nil && (*price < 0 || math.IsNaN(*price) || math.IsInf(*price, 0)) {
		return domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}

	return nil
}

// applyProductFields copies the supplied fields onto product and reports whether any was supplied.
func applyProductFields(product *entity.Product, input *usecase.UpdateProductInput) bool {
	changed := false
	if input.Name != nil {
		product.Name = *input.Name
		changed = true
	}
	if input.Description != nil {
		product.Description = input.Description
		changed = true
	}
	if input.Price != nil {
		product.Price = *input.Price
		changed = true
	}
	if input.Active != nil {
		product.Active = *input.Active
		changed = true
	}

	return changed
}

func tagIDs(tags []*entity.DietaryTag) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}

	return ids
}
