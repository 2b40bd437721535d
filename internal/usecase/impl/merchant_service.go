package impl

import (
	"context"
	"fmt"
	"log/slog"
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

type merchantService struct {
	txManager    repository.TransactionManager
	merchantRepo repository.MerchantRepository
	qrService    service.QRCodeService
	policy       usecase.AccessPolicy
	events       *catalogEvents
	text         textCleaner
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for MerchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MerchantRepo repository.MerchantRepository
	QRService    service.QRCodeService
	Policy       usecase.AccessPolicy
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder `optional:"true"`
	Sanitizer    service.TextSanitizer   `optional:"true"`
	Logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		txManager:    params.TxManager,
		merchantRepo: params.MerchantRepo,
		qrService:    params.QRService,
		policy:       params.Policy,
		events:       &catalogEvents{publisher: params.Publisher, metrics: params.Metrics, logger: params.Logger},
		text:         textCleaner{sanitizer: params.Sanitizer},
		logger:       params.Logger,
	}
}

func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMerchant opens a storefront and promotes its owner to merchant atomically.
func (srv *merchantService) CreateMerchant(ctx context.Context, principal *entity.User, input *usecase.CreateMerchantInput) (*entity.Merchant, error) {
	if err := srv.policy.Authorize(principal, entity.OpMerchantCreate); err != nil {
		return nil, err
	}
	var storeName string
	if input != nil {
		storeName = srv.text.clean(input.StoreName)
	}
	if storeName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store_name is required")
	}
	if utf8.RuneCountInString(storeName) > entity.MaxStoreNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("store_name must be at most %d characters", entity.MaxStoreNameLength))
	}

	merchant := &entity.Merchant{
		UserID:    principal.ID,
		StoreName: storeName,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		merchantRepo := repoFactory.MerchantRepo()

		_, err := merchantRepo.FindByUserID(ctx, principal.ID)
		if err == nil {
			return domainerrors.ErrMerchantAlreadyExists
		}
		if !errors.Is(err, repository.ErrMerchantNotFound) {
			return errors.Wrap(err, "failed to find merchant by user")
		}

		if err := merchantRepo.Create(ctx, merchant); err != nil {
			return err
		}

		if principal.HasRole(entity.RoleMerchant) {
			return nil
		}

		return errors.Wrap(repoFactory.UserRepo().UpdateRole(ctx, principal.ID, entity.RoleMerchant), "failed to promote user to merchant")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Merchant created",
		slog.String("merchant_id", merchant.ID.String()),
		slog.String("user_id", principal.ID.String()),
		slog.String("previous_role", principal.Role.String()),
	)
	srv.events.emit(ctx, &service.CatalogEvent{Type: service.EventMerchantCreated, MerchantID: merchant.ID.String()})

	return merchant, nil
}

// GetMyMerchant returns the storefront owned by the principal.
func (srv *merchantService) GetMyMerchant(ctx context.Context, principal *entity.User) (*entity.Merchant, error) {
	if err := srv.policy.Authorize(principal, entity.OpMerchantMe); err != nil {
		return nil, err
	}

	merchant, err := srv.merchantRepo.FindByUserID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by user")
	}

	return merchant, nil
}

// GetStorefrontQR renders the QR code of a merchant's public product listing.
func (srv *merchantService) GetStorefrontQR(ctx context.Context, merchantID uuid.UUID) (*usecase.StorefrontQR, error) {
	if _, err := srv.merchantRepo.FindByID(ctx, merchantID); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant")
	}

	png, err := srv.qrService.GenerateStorefrontQR(merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return &usecase.StorefrontQR{URL: srv.qrService.StorefrontURL(merchantID), PNG: png}, nil
}
