package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

type tagService struct {
	txManager repository.TransactionManager
	tagRepo   repository.TagRepository
	policy    usecase.AccessPolicy
	events    *catalogEvents
	text      textCleaner
	logger    *slog.Logger
}

// TagServiceParams holds dependencies for TagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TagRepo   repository.TagRepository
	Policy    usecase.AccessPolicy
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder `optional:"true"`
	Sanitizer service.TextSanitizer   `optional:"true"`
	Logger    *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		txManager: params.TxManager,
		tagRepo:   params.TagRepo,
		policy:    params.Policy,
		events:    &catalogEvents{publisher: params.Publisher, metrics: params.Metrics, logger: params.Logger},
		text:      textCleaner{sanitizer: params.Sanitizer},
		logger:    params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *tagService) CreateTag(ctx context.Context, principal *entity.User, input *usecase.TagInput) (*entity.DietaryTag, error) {
	if err := srv.policy.Authorize(principal, entity.OpTagCreate); err != nil {
		return nil, err
	}
	tag, err := srv.newTag(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.TagRepo()
		if err := ensureCodeAvailable(ctx, tagRepo, tag.Code, uuid.Nil); err != nil {
			return err
		}

		return tagRepo.Create(ctx, tag)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tag created", slog.String("tag_id", tag.ID.String()), slog.String("code", tag.Code))
	srv.events.emit(ctx, tagEvent(service.EventTagCreated, tag))

	return tag, nil
}

func (srv *tagService) ListTags(ctx context.Context) ([]*entity.DietaryTag, error) {
	tags, err := srv.tagRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// UpdateTag replaces code and label. A new code must not belong to another tag.
func (srv *tagService) UpdateTag(ctx context.Context, principal *entity.User, tagID uuid.UUID, input *usecase.TagInput) (*entity.DietaryTag, error) {
	if err := srv.policy.Authorize(principal, entity.OpTagUpdate); err != nil {
		return nil, err
	}
	changes, err := srv.newTag(input)
	if err != nil {
		return nil, err
	}

	var tag *entity.DietaryTag
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.TagRepo()

		var err error
		tag, err = findTag(ctx, tagRepo, tagID)
		if err != nil {
			return err
		}

		if tag.Code != changes.Code {
			if err := ensureCodeAvailable(ctx, tagRepo, changes.Code, tag.ID); err != nil {
				return err
			}
		}

		tag.Code = changes.Code
		tag.Label = changes.Label

		return tagRepo.Update(ctx, tag)
	})
	if err != nil {
		return nil, translateTagLookup(err)
	}

	srv.events.emit(ctx, tagEvent(service.EventTagUpdated, tag))

	return tag, nil
}

// DeleteTag removes the tag from the vocabulary and from every product carrying it.
func (srv *tagService) DeleteTag(ctx context.Context, principal *entity.User, tagID uuid.UUID) error {
	if err := srv.policy.Authorize(principal, entity.OpTagDelete); err != nil {
		return err
	}

	var tag *entity.DietaryTag
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tagRepo := repoFactory.TagRepo()

		var err error
		tag, err = findTag(ctx, tagRepo, tagID)
		if err != nil {
			return err
		}

		return tagRepo.Delete(ctx, tag.ID)
	})
	if err != nil {
		return translateTagLookup(err)
	}

	srv.log(ctx).Info("Tag deleted", slog.String("tag_id", tag.ID.String()), slog.String("code", tag.Code))
	srv.events.emit(ctx, tagEvent(service.EventTagDeleted, tag))

	return nil
}

// newTag trims the code and reduces the label to plain text.
func (srv *tagService) newTag(input *usecase.TagInput) (*entity.DietaryTag, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("code and label are required")
	}

	tag := &entity.DietaryTag{
		Code:  strings.TrimSpace(input.Code),
		Label: srv.text.clean(input.Label),
	}
	if tag.Code == "" || tag.Label == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("code and label are required")
	}
	if utf8.RuneCountInString(tag.Code) > entity.MaxTagCodeLength || utf8.RuneCountInString(tag.Label) > entity.MaxTagLabelLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("code must be at most %d and label at most %d characters", entity.MaxTagCodeLength, entity.MaxTagLabelLength))
	}

	return tag, nil
}

func findTag(ctx context.Context, tagRepo repository.TagRepository, tagID uuid.UUID) (*entity.DietaryTag, error) {
	tag, err := tagRepo.FindByID(ctx, tagID)
	if err != nil {
		return nil, translateTagLookup(err)
	}

	return tag, nil
}

// ensureCodeAvailable fails with a conflict when code belongs to a tag other than self.
func ensureCodeAvailable(ctx context.Context, tagRepo repository.TagRepository, code string, self uuid.UUID) error {
	existing, err := tagRepo.FindByCode(ctx, code)
	if errors.Is(err, repository.ErrTagNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find tag by code")
	}
	if existing.ID != self {
		return domainerrors.ErrTagCodeConflict.WithDetails("tag code '" + code + "' already exists")
	}

	return nil
}

func translateTagLookup(err error) error {
	if errors.Is(err, repository.ErrTagNotFound) {
		return domainerrors.ErrTagNotFound
	}

	return err
}
