package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type SetlistRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrSetlistNotFound = errors.New("setlist not found")

func NewSetlistRepository(db *bun.DB, logger logger.Logger) *SetlistRepository {
	return &SetlistRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *SetlistRepository) CreateSetlist(ctx context.Context, setlist *models.Setlist) error {

	_, err := r.db.NewInsert().Model(setlist).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "setlistRepo.CreateSetlist: ")
	}
	return nil
}

func (r *SetlistRepository) GetSetlistByID(ctx context.Context, id uuid.UUID) (*models.Setlist, error) {

	s := new(models.Setlist)
	err := r.db.NewSelect().Model(s).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, ErrSetlistNotFound
		}
		return nil, errors.Wrap(err, "setlistRepo.GetSetlistByID.Scan: ")
	}
	return s, nil
}

func (r *SetlistRepository) ListSetlistsForUser(ctx context.Context, userID uuid.UUID) ([]*models.Setlist, error) {

	var list []*models.Setlist
	err := r.db.NewSelect().
		Model(&list).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "setlistRepo.ListSetlistsForUser.Scan: ")
	}
	return list, nil
}

func (r *SetlistRepository) UpdateSetlist(ctx context.Context, setlist *models.Setlist) error {

	res, err := r.db.NewUpdate().
		Model(setlist).
		Column("title", "songs").
		Set("updated_at = current_timestamp").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "setlistRepo.UpdateSetlist: ")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrSetlistNotFound
	}
	return nil
}

func (r *SetlistRepository) DeleteSetlist(ctx context.Context, id uuid.UUID) error {

	res, err := r.db.NewDelete().
		Model((*models.Setlist)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "setlistRepo.DeleteSetlist: ")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrSetlistNotFound
	}
	return nil
}
