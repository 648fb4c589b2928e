package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/setlist"
	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
	"github.com/gitlancederecho/sona-app/internal/setlist/repository"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type SetlistUsecase struct {
	repo   setlist.SetlistRepository
	logger logger.Logger
}

func NewSetlistUsecase(repo setlist.SetlistRepository, logger logger.Logger) *SetlistUsecase {
	return &SetlistUsecase{repo: repo, logger: logger}
}

func (uc *SetlistUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]*setlist.SetlistDTO, error) {
	list, err := uc.repo.ListSetlistsForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing setlists", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	out := make([]*setlist.SetlistDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toDTO(s))
	}
	return out, nil
}

func (uc *SetlistUsecase) Get(ctx context.Context, id uuid.UUID) (*setlist.SetlistDTO, error) {
	s, err := uc.repo.GetSetlistByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrSetlistNotFound) {
			return nil, errors.ErrSetlistMissing
		}
		uc.logger.Error("database error fetching setlist", "id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(s), nil
}

func (uc *SetlistUsecase) Create(ctx context.Context, userID uuid.UUID, cmd setlist.CreateCommand) (*setlist.SetlistDTO, error) {
	if cmd.Title == "" {
		return nil, errors.InvalidArg("title is required")
	}

	s := &models.Setlist{
		UserID: userID,
		Title:  cmd.Title,
		Songs:  cmd.Songs,
	}
	if s.Songs == nil {
		s.Songs = []models.Song{}
	}
	if err := uc.repo.CreateSetlist(ctx, s); err != nil {
		uc.logger.Error("database error creating setlist", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(s), nil
}

func (uc *SetlistUsecase) Update(ctx context.Context, userID, id uuid.UUID, cmd setlist.UpdateCommand) (*setlist.SetlistDTO, error) {
	s, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			return nil, errors.InvalidArg("title is required")
		}
		s.Title = *cmd.Title
	}
	if cmd.Songs != nil {
		s.Songs = *cmd.Songs
	}

	if err := uc.repo.UpdateSetlist(ctx, s); err != nil {
		if stderrors.Is(err, repository.ErrSetlistNotFound) {
			return nil, errors.ErrSetlistMissing
		}
		uc.logger.Error("database error updating setlist", "id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(s), nil
}

func (uc *SetlistUsecase) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := uc.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteSetlist(ctx, id); err != nil {
		if stderrors.Is(err, repository.ErrSetlistNotFound) {
			return errors.ErrSetlistMissing
		}
		uc.logger.Error("database error deleting setlist", "id", id, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *SetlistUsecase) owned(ctx context.Context, userID, id uuid.UUID) (*models.Setlist, error) {
	s, err := uc.repo.GetSetlistByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrSetlistNotFound) {
			return nil, errors.ErrSetlistMissing
		}
		uc.logger.Error("database error fetching setlist", "id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if s.UserID != userID {
		return nil, errors.ErrNotOwner
	}
	return s, nil
}

func toDTO(s *models.Setlist) *setlist.SetlistDTO {
	return &setlist.SetlistDTO{
		ID:        s.ID,
		UserID:    s.UserID,
		Title:     s.Title,
		Songs:     s.Songs,
		CreatedAt: s.CreatedAt,
	}
}
