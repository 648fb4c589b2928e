package repository

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/gitlancederecho/sona-app/internal/profile"
	models "github.com/gitlancederecho/sona-app/internal/profile/model"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type ProfileRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	// ErrHandleConflict is the store-level unique constraint firing on
	// handle. It means a concurrent signup won the race after the
	// advisory pre-check passed.
	ErrHandleConflict  = errors.New("handle conflict")
	ErrProfileNotFound = errors.New("profile not found")
)

func NewProfileRepository(db *bun.DB, logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ProfileRepository) HandleExists(ctx context.Context, handle string) (bool, error) {

	exists, err := r.db.NewSelect().
		Model((*models.Profile)(nil)).
		Where("handle = ?", handle).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "profileRepo.HandleExists: ")
	}
	return exists, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *models.Profile) error {

	_, err := r.db.NewInsert().
		Model(p).
		On("CONFLICT (id) DO UPDATE").
		Set("handle = EXCLUDED.handle").
		Set("name = EXCLUDED.name").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrHandleConflict
		}
		return errors.Wrap(err, "profileRepo.UpsertProfile: ")
	}
	return nil
}

func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {

	p := new(models.Profile)
	err := r.db.NewSelect().Model(p).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profileRepo.GetProfileByID.Scan: ")
	}
	return p, nil
}

func (r *ProfileRepository) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {

	p := new(models.Profile)
	err := r.db.NewSelect().Model(p).Where("handle = ?", handle).Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profileRepo.GetProfileByHandle.Scan: ")
	}
	return p, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context, limit int) ([]*models.Profile, error) {

	var list []*models.Profile
	q := r.db.NewSelect().Model(&list).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "profileRepo.ListProfiles.Scan: ")
	}
	return list, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, changes profile.UpdateCommand) (*models.Profile, error) {

	p := new(models.Profile)
	q := r.db.NewUpdate().
		Model(p).
		Where("id = ?", id).
		Set("updated_at = current_timestamp").
		Returning("*")

	if changes.Handle != nil {
		q = q.Set("handle = ?", *changes.Handle)
	}
	if changes.Name != nil {
		q = q.Set("name = ?", *changes.Name)
	}
	if changes.Bio != nil {
		q = q.Set("bio = ?", *changes.Bio)
	}
	if changes.AvatarURL != nil {
		q = q.Set("avatar_url = ?", *changes.AvatarURL)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrHandleConflict
		}
		return nil, errors.Wrap(err, "profileRepo.UpdateProfile: ")
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if stderrors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
