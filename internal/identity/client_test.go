package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitlancederecho/sona-app/config"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.Identity{
		BaseURL:        srv.URL,
		ServiceRoleKey: "service-key",
	}, srv.Client(), logger.Logger{})
}

func TestClient_CreateUser(t *testing.T) {
	uid := uuid.New()

	t.Run("happy path - account created", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/admin/users", r.URL.Path)
			require.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
			require.Equal(t, "service-key", r.Header.Get("apikey"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice_99@users.local.sona", body["email"])
			assert.Equal(t, true, body["email_confirm"])

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":    uid.String(),
				"email": "alice_99@users.local.sona",
			})
		})

		got, err := client.CreateUser(context.Background(), CreateUserParams{
			Email:    "alice_99@users.local.sona",
			Password: "secret1",
			Confirm:  true,
			Metadata: map[string]string{"signup_via": "username"},
		})
		require.NoError(t, err)
		assert.Equal(t, uid, got)
	})

	t.Run("sad path - duplicate email maps to ErrEmailRegistered", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"msg": "A user with this email address has already been registered",
			})
		})

		_, err := client.CreateUser(context.Background(), CreateUserParams{
			Email:    "alice@example.com",
			Password: "secret1",
		})
		require.ErrorIs(t, err, ErrEmailRegistered)
	})

	t.Run("sad path - other provider rejection is not a duplicate", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "password is too weak"})
		})

		_, err := client.CreateUser(context.Background(), CreateUserParams{
			Email:    "alice@example.com",
			Password: "x",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailRegistered)
		assert.Contains(t, err.Error(), "password is too weak")
	})
}

func TestClient_GetUserByEmail(t *testing.T) {
	uid := uuid.New()

	t.Run("happy path - match found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "alice@example.com", r.URL.Query().Get("email"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]string{
					{"id": uuid.NewString(), "email": "other@example.com"},
					{"id": uid.String(), "email": "Alice@example.com"},
				},
			})
		})

		got, err := client.GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, uid, got)
	})

	t.Run("sad path - no match", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"users": []map[string]string{}})
		})

		_, err := client.GetUserByEmail(context.Background(), "ghost@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("sad path - provider error surfaces message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"msg": "database unavailable"})
		})

		_, err := client.GetUserByEmail(context.Background(), "alice@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database unavailable")
	})
}

func TestIsDuplicateMessage(t *testing.T) {
	assert.True(t, isDuplicateMessage("A user with this email address has already been registered"))
	assert.True(t, isDuplicateMessage("User already exists"))
	assert.True(t, isDuplicateMessage("duplicate key value violates unique constraint"))
	assert.False(t, isDuplicateMessage("password is too weak"))
}
