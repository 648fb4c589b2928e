package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlancederecho/sona-app/internal/profile"
	"github.com/gitlancederecho/sona-app/internal/profile/mocks"
	models "github.com/gitlancederecho/sona-app/internal/profile/model"
	"github.com/gitlancederecho/sona-app/internal/profile/repository"
	appErrors "github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

func newUsecase(t *testing.T) (*ProfileUsecase, *mocks.MockProfileRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	return NewProfileUsecase(repo, logger.Logger{}), repo
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	uid := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().
			GetProfileByID(gomock.Any(), uid).
			Return(&models.Profile{ID: uid, Handle: "alice_99", Name: "Alice"}, nil)

		dto, err := uc.GetProfile(context.Background(), uid)
		require.NoError(t, err)
		assert.Equal(t, "alice_99", dto.Handle)
	})

	t.Run("sad path - not found", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), uid).Return(nil, repository.ErrProfileNotFound)

		_, err := uc.GetProfile(context.Background(), uid)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})
}

func TestProfileUsecase_GetProfileByHandle(t *testing.T) {
	t.Run("normalizes before lookup", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().
			GetProfileByHandle(gomock.Any(), "alice_99").
			Return(&models.Profile{ID: uuid.New(), Handle: "alice_99"}, nil)

		_, err := uc.GetProfileByHandle(context.Background(), " Alice_99 ")
		require.NoError(t, err)
	})
}

func TestProfileUsecase_UpdateProfile(t *testing.T) {
	uid := uuid.New()

	t.Run("happy path - display fields only", func(t *testing.T) {
		uc, repo := newUsecase(t)

		name := "Alice A."
		repo.EXPECT().
			UpdateProfile(gomock.Any(), uid, gomock.Any()).
			Return(&models.Profile{ID: uid, Handle: "alice_99", Name: name}, nil)

		dto, err := uc.UpdateProfile(context.Background(), uid, profile.UpdateCommand{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, dto.Name)
	})

	t.Run("happy path - handle change revalidates and re-checks uniqueness", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().HandleExists(gomock.Any(), "new_handle").Return(false, nil)
		repo.EXPECT().
			UpdateProfile(gomock.Any(), uid, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, cmd profile.UpdateCommand) (*models.Profile, error) {
				require.NotNil(t, cmd.Handle)
				assert.Equal(t, "new_handle", *cmd.Handle)
				return &models.Profile{ID: uid, Handle: *cmd.Handle}, nil
			})

		raw := " New_Handle "
		dto, err := uc.UpdateProfile(context.Background(), uid, profile.UpdateCommand{Handle: &raw})
		require.NoError(t, err)
		assert.Equal(t, "new_handle", dto.Handle)
	})

	t.Run("sad path - invalid new handle", func(t *testing.T) {
		uc, _ := newUsecase(t)

		bad := "ab"
		_, err := uc.UpdateProfile(context.Background(), uid, profile.UpdateCommand{Handle: &bad})
		require.ErrorIs(t, err, appErrors.ErrInvalidHandle)
	})

	t.Run("sad path - new handle taken", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().HandleExists(gomock.Any(), "taken1").Return(true, nil)

		taken := "taken1"
		_, err := uc.UpdateProfile(context.Background(), uid, profile.UpdateCommand{Handle: &taken})
		require.ErrorIs(t, err, appErrors.ErrHandleTaken)
	})

	t.Run("sad path - race lost at store constraint", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().HandleExists(gomock.Any(), "taken1").Return(false, nil)
		repo.EXPECT().
			UpdateProfile(gomock.Any(), uid, gomock.Any()).
			Return(nil, repository.ErrHandleConflict)

		taken := "taken1"
		_, err := uc.UpdateProfile(context.Background(), uid, profile.UpdateCommand{Handle: &taken})
		require.ErrorIs(t, err, appErrors.ErrHandleTaken)
	})
}
