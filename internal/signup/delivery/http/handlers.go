package http

import (
	"encoding/json"
	"net/http"

	"github.com/gitlancederecho/sona-app/internal/signup"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

type SignupHandlers struct {
	uc     signup.SignupUsecase
	logger logger.Logger
}

func NewSignupHandlers(uc signup.SignupUsecase, logger logger.Logger) *SignupHandlers {
	return &SignupHandlers{uc: uc, logger: logger}
}

type signupRequest struct {
	Handle   string  `json:"handle"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
}

type signupResponse struct {
	OK        bool   `json:"ok"`
	UserID    string `json:"user_id"`
	EmailUsed string `json:"email_used"`
	Handle    string `json:"handle"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Stage   string `json:"stage,omitempty"`
	Details string `json:"details,omitempty"`
}

// Signup handles POST plus the CORS preflight. The mobile client calls
// this from any origin, so CORS is wide open by contract.
func (h *SignupHandlers) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeCORS(w)

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
			return
		case http.MethodPost:
		default:
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method Not Allowed"})
			return
		}

		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Stage: errors.StageParseBody})
			return
		}

		cmd := signup.Command{
			Handle:   req.Handle,
			Password: req.Password,
		}
		if req.Email != nil {
			cmd.Email = *req.Email
		}
		if req.Name != nil {
			cmd.Name = *req.Name
		}

		res, err := h.uc.Signup(r.Context(), cmd)
		if err != nil {
			h.logger.Warn("signup failed", "handle", req.Handle, "stage", errors.StageOf(err), "err", err)
			writeJSON(w, errors.HTTPStatus(err), errorResponse{
				Error:   errors.MessageOf(err),
				Stage:   errors.StageOf(err),
				Details: errors.DetailOf(err),
			})
			return
		}

		writeJSON(w, http.StatusOK, signupResponse{
			OK:        true,
			UserID:    res.UserID.String(),
			EmailUsed: res.EmailUsed,
			Handle:    res.Handle,
		})
	}
}

func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
