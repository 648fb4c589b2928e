package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/profile"
	models "github.com/gitlancederecho/sona-app/internal/profile/model"
	"github.com/gitlancederecho/sona-app/internal/profile/repository"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type ProfileUsecase struct {
	repo   profile.ProfileRepository
	logger logger.Logger
}

func NewProfileUsecase(repo profile.ProfileRepository, logger logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{repo: repo, logger: logger}
}

func (uc *ProfileUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*profile.ProfileDTO, error) {
	p, err := uc.repo.GetProfileByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.ErrProfileMissing
		}
		uc.logger.Error("database error fetching profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(p), nil
}

func (uc *ProfileUsecase) GetProfileByHandle(ctx context.Context, handle string) (*profile.ProfileDTO, error) {
	p, err := uc.repo.GetProfileByHandle(ctx, profile.NormalizeHandle(handle))
	if err != nil {
		if stderrors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.ErrProfileMissing
		}
		uc.logger.Error("database error fetching profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(p), nil
}

func (uc *ProfileUsecase) ListProfiles(ctx context.Context, limit int) ([]*profile.ProfileDTO, error) {
	list, err := uc.repo.ListProfiles(ctx, limit)
	if err != nil {
		uc.logger.Error("database error listing profiles", "err", err)
		return nil, errors.Internal("internal server error")
	}
	out := make([]*profile.ProfileDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toDTO(p))
	}
	return out, nil
}

func (uc *ProfileUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, cmd profile.UpdateCommand) (*profile.ProfileDTO, error) {
	if cmd.Handle != nil {
		normalized := profile.NormalizeHandle(*cmd.Handle)
		if err := profile.ValidateHandle(normalized); err != nil {
			return nil, err
		}
		if exists, err := uc.repo.HandleExists(ctx, normalized); err != nil {
			uc.logger.Error("database error checking handle", "err", err)
			return nil, errors.Internal("internal server error")
		} else if exists {
			return nil, errors.ErrHandleTaken
		}
		cmd.Handle = &normalized
	}

	p, err := uc.repo.UpdateProfile(ctx, id, cmd)
	if err != nil {
		switch {
		case stderrors.Is(err, repository.ErrProfileNotFound):
			return nil, errors.ErrProfileMissing
		case stderrors.Is(err, repository.ErrHandleConflict):
			// lost the race after the pre-check passed
			return nil, errors.ErrHandleTaken
		}
		uc.logger.Error("database error updating profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return toDTO(p), nil
}

func toDTO(p *models.Profile) *profile.ProfileDTO {
	return &profile.ProfileDTO{
		ID:        p.ID,
		Handle:    p.Handle,
		Name:      p.Name,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
	}
}
