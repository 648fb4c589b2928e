package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/stream"
	models "github.com/gitlancederecho/sona-app/internal/stream/model"
	"github.com/gitlancederecho/sona-app/internal/stream/repository"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type StreamUsecase struct {
	repo   stream.StreamRepository
	logger logger.Logger
}

func NewStreamUsecase(repo stream.StreamRepository, logger logger.Logger) *StreamUsecase {
	return &StreamUsecase{repo: repo, logger: logger}
}

func (uc *StreamUsecase) ListLive(ctx context.Context) ([]*stream.StreamDTO, error) {
	list, err := uc.repo.ListLive(ctx)
	if err != nil {
		uc.logger.Error("database error listing live streams", "err", err)
		return nil, errors.Internal("internal server error")
	}
	out := make([]*stream.StreamDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	return out, nil
}

func (uc *StreamUsecase) Get(ctx context.Context, id uuid.UUID) (*stream.StreamDTO, error) {
	s, err := uc.repo.GetStreamByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrStreamNotFound) {
			return nil, nil
		}
		uc.logger.Error("database error fetching stream", "id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(s), nil
}

func toDTO(s *models.Stream) *stream.StreamDTO {
	return &stream.StreamDTO{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		PlaybackURL: s.PlaybackURL,
		Status:      s.Status,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
	}
}
