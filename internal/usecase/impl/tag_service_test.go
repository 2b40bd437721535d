package impl

import (
	"context"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tagServiceFixtures struct {
	service   usecase.TagUsecase
	txManager *mockRepo.MockTransactionManager
	tagRepo   *mockRepo.MockTagRepository
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestTagService(t *testing.T, tagCreate string) tagServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewTagService(TagServiceParams{
		TxManager: txManager,
		TagRepo:   tagRepo,
		Policy:    newTestPolicy(tagCreate),
		Publisher: publisher,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	})

	return tagServiceFixtures{
		service:   svc,
		txManager: txManager,
		tagRepo:   tagRepo,
		publisher: publisher,
		metrics:   metrics,
	}
}

func TestTagService_CreateTag(t *testing.T) {
	fixtures := createTestTagService(t, "")
	ctx := context.Background()

	repos := expectTx(t, fixtures.txManager)
	repos.tags.EXPECT().FindByCode(ctx, "vegan").Return(nil, repository.ErrTagNotFound)
	repos.tags.EXPECT().
		Create(ctx, mock.MatchedBy(func(tag *entity.DietaryTag) bool {
			return tag.Code == "vegan" && tag.Label == "Vegan"
		})).
		Run(func(_ context.Context, tag *entity.DietaryTag) {
			tag.ID = uuid.New()
		}).
		Return(nil)
	expectEvent(fixtures.publisher, fixtures.metrics, service.EventTagCreated)

	tag, err := fixtures.service.CreateTag(ctx, newUser(entity.RoleClient), &usecase.TagInput{Code: " vegan ", Label: "Vegan"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tag.ID)
	assert.Equal(t, "vegan", tag.Code)
}

func TestTagService_CreateTag_CodeConflict(t *testing.T) {
	fixtures := createTestTagService(t, "")
	ctx := context.Background()

	repos := expectTx(t, fixtures.txManager)
	repos.tags.EXPECT().FindByCode(ctx, "vegan").Return(&entity.DietaryTag{ID: uuid.New(), Code: "vegan"}, nil)

	_, err := fixtures.service.CreateTag(ctx, newUser(entity.RoleMerchant), &usecase.TagInput{Code: "vegan", Label: "Plant based"})

	assert.ErrorIs(t, err, domainerrors.ErrTagCodeConflict)
	repos.tags.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTagService_CreateTag_Gates(t *testing.T) {
	tests := []struct {
		name      string
		tagCreate string
		principal *entity.User
		input     *usecase.TagInput
		wantErr   error
	}{
		{
			name:    "anonymous",
			input:   &usecase.TagInput{Code: "vegan", Label: "Vegan"},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:      "admin-only policy rejects merchant",
			tagCreate: "admin",
			principal: newUser(entity.RoleMerchant),
			input:     &usecase.TagInput{Code: "vegan", Label: "Vegan"},
			wantErr:   domainerrors.ErrForbidden,
		},
		{
			name:      "blank label",
			principal: newUser(entity.RoleClient),
			input:     &usecase.TagInput{Code: "vegan", Label: "  "},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "label over column limit",
			principal: newUser(entity.RoleClient),
			input:     &usecase.TagInput{Code: "vegan", Label: strings.Repeat("v", entity.MaxTagLabelLength+1)},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "code over column limit",
			principal: newUser(entity.RoleClient),
			input:     &usecase.TagInput{Code: strings.Repeat("v", entity.MaxTagCodeLength+1), Label: "Vegan"},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "missing body",
			principal: newUser(entity.RoleClient),
			wantErr:   domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestTagService(t, tt.tagCreate)

			_, err := fixtures.service.CreateTag(context.Background(), tt.principal, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTagService_ListTags(t *testing.T) {
	fixtures := createTestTagService(t, "")
	tags := []*entity.DietaryTag{{ID: uuid.New(), Code: "vegan"}, {ID: uuid.New(), Code: "keto"}}

	fixtures.tagRepo.EXPECT().List(mock.Anything).Return(tags, nil)

	got, err := fixtures.service.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tags, got)
}

func TestTagService_UpdateTag(t *testing.T) {
	t.Run("renames code", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		ctx := context.Background()
		existing := &entity.DietaryTag{ID: uuid.New(), Code: "veg", Label: "Veg"}

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		repos.tags.EXPECT().FindByCode(ctx, "vegetarian").Return(nil, repository.ErrTagNotFound)
		repos.tags.EXPECT().Update(ctx, existing).Return(nil)
		expectEvent(fixtures.publisher, fixtures.metrics, service.EventTagUpdated)

		tag, err := fixtures.service.UpdateTag(ctx, newUser(entity.RoleAdmin), existing.ID, &usecase.TagInput{Code: "vegetarian", Label: "Vegetarian"})

		require.NoError(t, err)
		assert.Equal(t, "vegetarian", tag.Code)
		assert.Equal(t, "Vegetarian", tag.Label)
	})

	t.Run("same code only relabels", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		ctx := context.Background()
		existing := &entity.DietaryTag{ID: uuid.New(), Code: "vegan", Label: "Vegan"}

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		repos.tags.EXPECT().Update(ctx, existing).Return(nil)
		expectEvent(fixtures.publisher, fixtures.metrics, service.EventTagUpdated)

		_, err := fixtures.service.UpdateTag(ctx, newUser(entity.RoleAdmin), existing.ID, &usecase.TagInput{Code: "vegan", Label: "Plant based"})

		require.NoError(t, err)
		repos.tags.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
	})

	t.Run("code taken by another tag", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		ctx := context.Background()
		existing := &entity.DietaryTag{ID: uuid.New(), Code: "veg", Label: "Veg"}

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		repos.tags.EXPECT().FindByCode(ctx, "vegan").Return(&entity.DietaryTag{ID: uuid.New(), Code: "vegan"}, nil)

		_, err := fixtures.service.UpdateTag(ctx, newUser(entity.RoleAdmin), existing.ID, &usecase.TagInput{Code: "vegan", Label: "Vegan"})

		assert.ErrorIs(t, err, domainerrors.ErrTagCodeConflict)
		repos.tags.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown tag", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		id := uuid.New()

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrTagNotFound)

		_, err := fixtures.service.UpdateTag(context.Background(), newUser(entity.RoleAdmin), id, &usecase.TagInput{Code: "vegan", Label: "Vegan"})

		assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
	})

	t.Run("requires admin", func(t *testing.T) {
		fixtures := createTestTagService(t, "")

		_, err := fixtures.service.UpdateTag(context.Background(), newUser(entity.RoleMerchant), uuid.New(), &usecase.TagInput{Code: "vegan", Label: "Vegan"})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestTagService_DeleteTag(t *testing.T) {
	t.Run("removes tag", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		ctx := context.Background()
		existing := &entity.DietaryTag{ID: uuid.New(), Code: "vegan", Label: "Vegan"}

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		repos.tags.EXPECT().Delete(ctx, existing.ID).Return(nil)
		expectEvent(fixtures.publisher, fixtures.metrics, service.EventTagDeleted)

		require.NoError(t, fixtures.service.DeleteTag(ctx, newUser(entity.RoleAdmin), existing.ID))
	})

	t.Run("unknown tag", func(t *testing.T) {
		fixtures := createTestTagService(t, "")
		id := uuid.New()

		repos := expectTx(t, fixtures.txManager)
		repos.tags.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrTagNotFound)

		err := fixtures.service.DeleteTag(context.Background(), newUser(entity.RoleAdmin), id)

		assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
		fixtures.publisher.AssertNotCalled(t, "PublishCatalogEvent", mock.Anything, mock.Anything)
	})

	t.Run("requires admin", func(t *testing.T) {
		fixtures := createTestTagService(t, "")

		err := fixtures.service.DeleteTag(context.Background(), newUser(entity.RoleClient), uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
