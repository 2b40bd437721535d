package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T, adminEmails ...string) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Metrics:      fx.metrics,
		Config:       &config.Config{Auth: &config.AuthConfig{AdminEmails: adminEmails}},
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "ana@example.com", Password: "s3cret", Name: " Ana "}

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, repository.ErrUserNotFound)
	repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleClient, user.Role)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuthService_Register_AdminEmail(t *testing.T) {
	fx := createTestAuthService(t, "root@example.com")
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "root@example.com").Return(nil, repository.ErrUserNotFound)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "root@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ana@example.com", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: " ", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	name := strings.Repeat("n", entity.MaxUserNameLength+1)
	_, err = fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@example.com", Password: "pw", Name: name})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("boom"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Role: entity.RoleMerchant}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)
	fx.tokenService.EXPECT().
		IssueToken(map[string]any{service.ClaimSubject: user.ID.String(), service.ClaimRole: "merchant"}, time.Hour).
		Return("signed.jwt", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "x@example.com").Return(nil, repository.ErrUserNotFound)
		fx.metrics.EXPECT().RecordAuthFailure("invalid_credentials").Return()

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "x@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@example.com").Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)
		fx.metrics.EXPECT().RecordAuthFailure("invalid_credentials").Return()

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ana@example.com", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}

	t.Run("bearer token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().DecodeToken("abc").Return(map[string]any{"sub": user.ID.String()}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		got, err := fx.service.Authenticate(context.Background(), "Bearer abc")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("bare token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().DecodeToken("abc").Return(map[string]any{"sub": user.ID.String()}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		got, err := fx.service.Authenticate(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.metrics.EXPECT().RecordAuthFailure("missing_token").Return()

		_, err := fx.service.Authenticate(context.Background(), "  ")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().DecodeToken("abc").Return(nil, service.ErrInvalidToken)
		fx.metrics.EXPECT().RecordAuthFailure("invalid_token").Return()

		_, err := fx.service.Authenticate(context.Background(), "bearer abc")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().DecodeToken("abc").Return(map[string]any{"role": "client"}, nil)
		fx.metrics.EXPECT().RecordAuthFailure("invalid_token").Return()

		_, err := fx.service.Authenticate(context.Background(), "Bearer abc")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().DecodeToken("abc").Return(map[string]any{"sub": user.ID.String()}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(nil, repository.ErrUserNotFound)
		fx.metrics.EXPECT().RecordAuthFailure("unknown_principal").Return()

		_, err := fx.service.Authenticate(context.Background(), "Bearer abc")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	assert.Equal(t, "abc", extractToken("BEARER   abc "))
	assert.Equal(t, "abc", extractToken("abc"))
	assert.Equal(t, "", extractToken(""))
}
