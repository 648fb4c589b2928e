package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/gitlancederecho/sona-app/internal/stream/model"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type StreamRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrStreamNotFound = errors.New("stream not found")

func NewStreamRepository(db *bun.DB, logger logger.Logger) *StreamRepository {
	return &StreamRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *StreamRepository) ListLive(ctx context.Context) ([]*models.Stream, error) {

	var list []*models.Stream
	err := r.db.NewSelect().
		Model(&list).
		Where("status = ?", models.StatusLive).
		Order("started_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "streamRepo.ListLive.Scan: ")
	}
	return list, nil
}

func (r *StreamRepository) GetStreamByID(ctx context.Context, id uuid.UUID) (*models.Stream, error) {

	s := new(models.Stream)
	err := r.db.NewSelect().Model(s).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, ErrStreamNotFound
		}
		return nil, errors.Wrap(err, "streamRepo.GetStreamByID.Scan: ")
	}
	return s, nil
}
