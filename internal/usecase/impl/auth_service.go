package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"marketplace/config"
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

const bearerPrefix = "bearer "

// Reasons reported to the auth failure counter.
const (
	authFailureMissingToken       = "missing_token"
	authFailureInvalidToken       = "invalid_token"
	authFailureUnknownPrincipal   = "unknown_principal"
	authFailureInvalidCredentials = "invalid_credentials"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.MetricsRecorder
	adminEmails  []string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.MetricsRecorder `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var adminEmails []string
	if params.Config != nil && params.Config.Auth != nil {
		adminEmails = params.Config.Auth.AdminEmails
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      params.Metrics,
		adminEmails:  adminEmails,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) recordFailure(reason string) {
	if srv.metrics != nil {
		srv.metrics.RecordAuthFailure(reason)
	}
}

// Register creates a client account, or an admin account for configured admin emails.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	name := strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(name) > entity.MaxUserNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("name must be at most %d characters", entity.MaxUserNameLength))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	role := entity.RoleClient
	if slices.Contains(srv.adminEmails, input.Email) {
		role = entity.RoleAdmin
	}

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()), slog.String("role", role.String()))

	return user, nil
}

// Login verifies the credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recordFailure(authFailureInvalidCredentials)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recordFailure(authFailureInvalidCredentials)
		srv.log(ctx).Debug("Password mismatch", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	ttl := srv.tokenService.AccessTokenTTL()
	token, err := srv.tokenService.IssueToken(map[string]any{
		service.ClaimSubject: user.ID.String(),
		service.ClaimRole:    user.Role.String(),
	}, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		User:        user,
	}, nil
}

// Authenticate maps an Authorization header value to the stored user named by the token subject.
func (srv *authService) Authenticate(ctx context.Context, authorization string) (*entity.User, error) {
	token := extractToken(authorization)
	if token == "" {
		srv.recordFailure(authFailureMissingToken)

		return nil, domainerrors.ErrUnauthorized
	}

	claims, err := srv.tokenService.DecodeToken(token)
	if err != nil {
		srv.recordFailure(authFailureInvalidToken)

		return nil, domainerrors.ErrInvalidToken
	}

	subject, _ := claims[service.ClaimSubject].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		srv.recordFailure(authFailureInvalidToken)

		return nil, domainerrors.ErrUnauthorized.WithDetails("token subject is missing or malformed")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.recordFailure(authFailureUnknownPrincipal)

			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	return user, nil
}

// extractToken accepts "Bearer <token>" in any case, or a bare token.
func extractToken(authorization string) string {
	value := strings.TrimSpace(authorization)
	if len(value) >= len(bearerPrefix) && strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		value = strings.TrimSpace(value[len(bearerPrefix):])
	}

	return value
}
