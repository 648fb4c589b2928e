package http

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlancederecho/sona-app/internal/signup"
	"github.com/gitlancederecho/sona-app/internal/signup/mocks"
	appErrors "github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

func assertErr(msg string) error { return stderrors.New(msg) }

func newHandler(t *testing.T) (*SignupHandlers, *mocks.MockSignupUsecase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSignupUsecase(ctrl)
	return NewSignupHandlers(uc, logger.Logger{}), uc
}

func doSignup(h *SignupHandlers, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/functions/username-signup", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Signup()(rec, req)
	return rec
}

func TestSignupHandler(t *testing.T) {
	uid := uuid.New()

	t.Run("happy path - returns ok payload", func(t *testing.T) {
		h, uc := newHandler(t)

		uc.EXPECT().
			Signup(gomock.Any(), signup.Command{Handle: "alice_99", Password: "secret1", Name: "Alice"}).
			Return(&signup.Result{UserID: uid, EmailUsed: "alice_99@users.local.sona", Handle: "alice_99"}, nil)

		rec := doSignup(h, http.MethodPost, `{"handle":"alice_99","password":"secret1","name":"Alice"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, uid.String(), body["user_id"])
		assert.Equal(t, "alice_99@users.local.sona", body["email_used"])
		assert.Equal(t, "alice_99", body["handle"])
	})

	t.Run("null email and name are accepted", func(t *testing.T) {
		h, uc := newHandler(t)

		uc.EXPECT().
			Signup(gomock.Any(), signup.Command{Handle: "alice_99", Password: "secret1"}).
			Return(&signup.Result{UserID: uid, EmailUsed: "alice_99@users.local.sona", Handle: "alice_99"}, nil)

		rec := doSignup(h, http.MethodPost, `{"handle":"alice_99","password":"secret1","email":null,"name":null}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		h, _ := newHandler(t)

		rec := doSignup(h, http.MethodOptions, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("method not allowed", func(t *testing.T) {
		h, _ := newHandler(t)

		rec := doSignup(h, http.MethodGet, "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newHandler(t)

		rec := doSignup(h, http.MethodPost, `{"handle":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "parse-body", body["stage"])
	})

	t.Run("handle taken maps to 409 with stage", func(t *testing.T) {
		h, uc := newHandler(t)

		uc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, appErrors.ErrHandleTaken)

		rec := doSignup(h, http.MethodPost, `{"handle":"taken1","password":"secret1"}`)
		require.Equal(t, http.StatusConflict, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "handle already taken", body["error"])
		assert.Equal(t, "check-handle", body["stage"])
	})

	t.Run("invalid handle maps to 400 at validate stage", func(t *testing.T) {
		h, uc := newHandler(t)

		uc.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, appErrors.ErrInvalidHandle)

		rec := doSignup(h, http.MethodPost, `{"handle":"ab","password":"secret1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "validate", body["stage"])
	})

	t.Run("provider failure maps to 500 with details", func(t *testing.T) {
		h, uc := newHandler(t)

		uc.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(nil, appErrors.IdentityCreateFailed(assertErr("provider exploded")))

		rec := doSignup(h, http.MethodPost, `{"handle":"alice_99","password":"secret1"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "create-user", body["stage"])
		assert.True(t, strings.Contains(body["details"].(string), "provider exploded"))
	})
}
