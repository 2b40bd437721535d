package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPolicy(tagCreate string) usecase.AccessPolicy {
	return NewAccessPolicy(AccessPolicyParams{
		Config: &config.Config{Policy: &config.PolicyConfig{TagCreate: tagCreate}},
		Logger: newDiscardLogger(),
	})
}

func newUser(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Email: role.String() + "@example.com", Role: role}
}

// txRepos are the repositories handed out inside a mocked transaction.
type txRepos struct {
	factory   *mockRepo.MockRepositoryFactory
	users     *mockRepo.MockUserRepository
	merchants *mockRepo.MockMerchantRepository
	products  *mockRepo.MockProductRepository
	tags      *mockRepo.MockTagRepository
}

// expectTx makes txManager run the callback once against fresh repository mocks
// and return whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) *txRepos {
	t.Helper()

	repos := &txRepos{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		users:     mockRepo.NewMockUserRepository(t),
		merchants: mockRepo.NewMockMerchantRepository(t),
		products:  mockRepo.NewMockProductRepository(t),
		tags:      mockRepo.NewMockTagRepository(t),
	}
	repos.factory.EXPECT().UserRepo().Return(repos.users).Maybe()
	repos.factory.EXPECT().MerchantRepo().Return(repos.merchants).Maybe()
	repos.factory.EXPECT().ProductRepo().Return(repos.products).Maybe()
	repos.factory.EXPECT().TagRepo().Return(repos.tags).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()

	return repos
}

// expectEvent expects one committed catalog event of the given type.
func expectEvent(publisher *mockSvc.MockEventPublisher, metrics *mockSvc.MockMetricsRecorder, eventType service.CatalogEventType) {
	metrics.EXPECT().RecordCatalogMutation(eventType).Return().Once()
	publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == eventType && event.ID != ""
		})).
		Return(nil).
		Once()
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
