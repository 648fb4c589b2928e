package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/setlist"
	models "github.com/gitlancederecho/sona-app/internal/setlist/model"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/httputil"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

// The caller's user id arrives explicitly (query or body); session
// verification belongs to the identity provider's gateway, not here.
type SetlistHandlers struct {
	uc     setlist.SetlistUsecase
	logger logger.Logger
}

func NewSetlistHandlers(uc setlist.SetlistUsecase, logger logger.Logger) *SetlistHandlers {
	return &SetlistHandlers{uc: uc, logger: logger}
}

func (h *SetlistHandlers) ListForUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("user_id is required"))
			return
		}

		list, err := h.uc.ListForUser(r.Context(), userID)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, list)
	}
}

func (h *SetlistHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid setlist id"))
			return
		}

		dto, err := h.uc.Get(r.Context(), id)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}

type createSetlistRequest struct {
	UserID string        `json:"user_id"`
	Title  string        `json:"title"`
	Songs  []models.Song `json:"songs"`
}

func (h *SetlistHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSetlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Error(w, errors.InvalidArg("invalid request body"))
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			httputil.Error(w, errors.InvalidArg("user_id is required"))
			return
		}

		dto, err := h.uc.Create(r.Context(), userID, setlist.CreateCommand{
			Title: req.Title,
			Songs: req.Songs,
		})
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusCreated, dto)
	}
}

type updateSetlistRequest struct {
	UserID string         `json:"user_id"`
	Title  *string        `json:"title"`
	Songs  *[]models.Song `json:"songs"`
}

func (h *SetlistHandlers) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid setlist id"))
			return
		}

		var req updateSetlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Error(w, errors.InvalidArg("invalid request body"))
			return
		}
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			httputil.Error(w, errors.InvalidArg("user_id is required"))
			return
		}

		dto, err := h.uc.Update(r.Context(), userID, id, setlist.UpdateCommand{
			Title: req.Title,
			Songs: req.Songs,
		})
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}

func (h *SetlistHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid setlist id"))
			return
		}
		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("user_id is required"))
			return
		}

		if err := h.uc.Delete(r.Context(), userID, id); err != nil {
			httputil.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
