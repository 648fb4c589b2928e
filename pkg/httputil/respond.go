package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/gitlancederecho/sona-app/pkg/errors"
)

type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Error renders an AppError with its mapped status; raw cause text is
// deliberately omitted on this surface.
func Error(w http.ResponseWriter, err error) {
	JSON(w, errors.HTTPStatus(err), errorBody{
		Error: errors.MessageOf(err),
		Code:  errors.CodeOf(err),
	})
}
