package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlancederecho/sona-app/internal/setlist"
	"github.com/gitlancederecho/sona-app/internal/setlist/mocks"
	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
	"github.com/gitlancederecho/sona-app/internal/setlist/repository"
	appErrors "github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

func newUsecase(t *testing.T) (*SetlistUsecase, *mocks.MockSetlistRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSetlistRepository(ctrl)
	return NewSetlistUsecase(repo, logger.Logger{}), repo
}

func TestSetlistUsecase_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().
			CreateSetlist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Setlist) error {
				assert.Equal(t, userID, s.UserID)
				assert.Equal(t, "Friday Set", s.Title)
				assert.NotNil(t, s.Songs)
				s.ID = uuid.New()
				return nil
			})

		dto, err := uc.Create(context.Background(), userID, setlist.CreateCommand{Title: "Friday Set"})
		require.NoError(t, err)
		assert.Equal(t, "Friday Set", dto.Title)
		assert.NotNil(t, dto.Songs)
	})

	t.Run("sad path - title required", func(t *testing.T) {
		uc, _ := newUsecase(t)

		_, err := uc.Create(context.Background(), userID, setlist.CreateCommand{})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func TestSetlistUsecase_Update(t *testing.T) {
	userID := uuid.New()
	setlistID := uuid.New()

	existing := func() *models.Setlist {
		return &models.Setlist{
			ID:     setlistID,
			UserID: userID,
			Title:  "Friday Set",
			Songs:  []models.Song{{ID: "s1", Title: "Opener"}},
		}
	}

	t.Run("happy path - partial update keeps other fields", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetSetlistByID(gomock.Any(), setlistID).Return(existing(), nil)
		repo.EXPECT().
			UpdateSetlist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Setlist) error {
				assert.Equal(t, "Saturday Set", s.Title)
				assert.Len(t, s.Songs, 1)
				return nil
			})

		title := "Saturday Set"
		dto, err := uc.Update(context.Background(), userID, setlistID, setlist.UpdateCommand{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Saturday Set", dto.Title)
	})

	t.Run("sad path - not the owner", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetSetlistByID(gomock.Any(), setlistID).Return(existing(), nil)

		title := "Hijacked"
		_, err := uc.Update(context.Background(), uuid.New(), setlistID, setlist.UpdateCommand{Title: &title})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodePermissionDenied, appErrors.CodeOf(err))
	})

	t.Run("sad path - empty title rejected", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetSetlistByID(gomock.Any(), setlistID).Return(existing(), nil)

		empty := ""
		_, err := uc.Update(context.Background(), userID, setlistID, setlist.UpdateCommand{Title: &empty})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - unknown setlist", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().GetSetlistByID(gomock.Any(), setlistID).Return(nil, repository.ErrSetlistNotFound)

		title := "x"
		_, err := uc.Update(context.Background(), userID, setlistID, setlist.UpdateCommand{Title: &title})
		require.ErrorIs(t, err, appErrors.ErrSetlistMissing)
	})
}

func TestSetlistUsecase_Delete(t *testing.T) {
	userID := uuid.New()
	setlistID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().
			GetSetlistByID(gomock.Any(), setlistID).
			Return(&models.Setlist{ID: setlistID, UserID: userID}, nil)
		repo.EXPECT().DeleteSetlist(gomock.Any(), setlistID).Return(nil)

		require.NoError(t, uc.Delete(context.Background(), userID, setlistID))
	})

	t.Run("sad path - not the owner", func(t *testing.T) {
		uc, repo := newUsecase(t)

		repo.EXPECT().
			GetSetlistByID(gomock.Any(), setlistID).
			Return(&models.Setlist{ID: setlistID, UserID: uuid.New()}, nil)

		err := uc.Delete(context.Background(), userID, setlistID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodePermissionDenied, appErrors.CodeOf(err))
	})
}

func TestSetlistUsecase_ListForUser(t *testing.T) {
	userID := uuid.New()

	uc, repo := newUsecase(t)

	repo.EXPECT().
		ListSetlistsForUser(gomock.Any(), userID).
		Return([]*models.Setlist{
			{ID: uuid.New(), UserID: userID, Title: "Newest"},
			{ID: uuid.New(), UserID: userID, Title: "Oldest"},
		}, nil)

	list, err := uc.ListForUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newest", list[0].Title)
}
