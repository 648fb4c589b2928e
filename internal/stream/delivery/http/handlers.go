package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/gitlancederecho/sona-app/internal/stream"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/httputil"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type StreamHandlers struct {
	uc     stream.StreamUsecase
	logger logger.Logger
}

func NewStreamHandlers(uc stream.StreamUsecase, logger logger.Logger) *StreamHandlers {
	return &StreamHandlers{uc: uc, logger: logger}
}

func (h *StreamHandlers) ListLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.uc.ListLive(r.Context())
		if err != nil {
			httputil.Error(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, list)
	}
}

func (h *StreamHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.Error(w, errors.InvalidArg("invalid stream id"))
			return
		}

		dto, err := h.uc.Get(r.Context(), id)
		if err != nil {
			httputil.Error(w, err)
			return
		}
		if dto == nil {
			// maybe-single semantics: unknown id is null, not 404
			httputil.JSON(w, http.StatusOK, nil)
			return
		}
		httputil.JSON(w, http.StatusOK, dto)
	}
}
