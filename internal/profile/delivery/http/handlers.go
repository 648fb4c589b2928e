package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/profile"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/httputil"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type ProfileHandlers struct {
	uc     profile.ProfileUsecase
	logger logger.Logger
}

func NewProfileHandlers(uc profile.ProfileUsecase, logger logger.Logger) *ProfileHandlers {
	return &ProfileHandlers{uc: uc, logger: logger}
}

const defaultListLimit = 50

func (h *ProfileHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultListLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				httputil.Error(w, errors.InvalidArg("limit must be a positive integer"))
				return
			}
			limit = n
		}

		list, err := h.uc.ListProfiles(r.Context(), limit)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, list)
	}
}

func (h *ProfileHandlers) GetByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid profile id"))
			return
		}

		dto, err := h.uc.GetProfile(r.Context(), id)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}

func (h *ProfileHandlers) GetByHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := h.uc.GetProfileByHandle(r.Context(), chi.URLParam(r, "handle"))
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}

type updateProfileRequest struct {
	Handle    *string `json:"handle"`
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *ProfileHandlers) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid profile id"))
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Error(w, errors.InvalidArg("invalid request body"))
			return
		}

		dto, err := h.uc.UpdateProfile(r.Context(), id, profile.UpdateCommand{
			Handle:    req.Handle,
			Name:      req.Name,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}
