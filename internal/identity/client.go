package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/gitlancederecho/sona-app/config"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

// Client speaks the GoTrue-compatible admin API with a service-role
// token: POST /admin/users to create an account, GET /admin/users with
// an email filter to look one up.
type Client struct {
	baseURL    string
	serviceKey string
	http       *http.Client
	logger     logger.Logger
}

func NewClient(cfg config.Identity, httpClient *http.Client, logger logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceRoleKey,
		http:       httpClient,
		logger:     logger,
	}
}

type adminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type adminError struct {
	Message          string `json:"msg"`
	Message2         string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e adminError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Message2 != "":
		return e.Message2
	case e.ErrorDescription != "":
		return e.ErrorDescription
	}
	return ""
}

func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (uuid.UUID, error) {
	payload := map[string]any{
		"email":         params.Email,
		"password":      params.Password,
		"email_confirm": params.Confirm,
	}
	if len(params.Metadata) > 0 {
		payload["user_metadata"] = params.Metadata
	}

	body, status, err := c.do(ctx, http.MethodPost, "/admin/users", payload)
	if err != nil {
		return uuid.Nil, err
	}

	if status >= 400 {
		var apiErr adminError
		_ = json.Unmarshal(body, &apiErr)
		msg := apiErr.text()
		if msg == "" {
			msg = fmt.Sprintf("create user failed with status %d", status)
		}
		if isDuplicateMessage(msg) {
			return uuid.Nil, errors.Wrap(ErrEmailRegistered, msg)
		}
		c.logger.Warn("identity create rejected", "status", status, "msg", msg)
		return uuid.Nil, errors.New(msg)
	}

	var created adminUser
	if err := json.Unmarshal(body, &created); err != nil {
		return uuid.Nil, errors.Wrap(err, "identityClient.CreateUser.Unmarshal: ")
	}
	uid, err := uuid.Parse(created.ID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "identityClient.CreateUser.ParseID: ")
	}
	return uid, nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	path := "/admin/users?email=" + url.QueryEscape(email)
	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return uuid.Nil, err
	}
	if status >= 400 {
		var apiErr adminError
		_ = json.Unmarshal(body, &apiErr)
		msg := apiErr.text()
		if msg == "" {
			msg = fmt.Sprintf("user lookup failed with status %d", status)
		}
		return uuid.Nil, errors.New(msg)
	}

	var page struct {
		Users []adminUser `json:"users"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return uuid.Nil, errors.Wrap(err, "identityClient.GetUserByEmail.Unmarshal: ")
	}

	for _, u := range page.Users {
		if strings.EqualFold(u.Email, email) {
			uid, err := uuid.Parse(u.ID)
			if err != nil {
				return uuid.Nil, errors.Wrap(err, "identityClient.GetUserByEmail.ParseID: ")
			}
			return uid, nil
		}
	}
	return uuid.Nil, ErrUserNotFound
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, errors.Wrap(err, "identityClient.do.Marshal: ")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, errors.Wrap(err, "identityClient.do.NewRequest: ")
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "identityClient.do: ")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "identityClient.do.ReadAll: ")
	}
	return body, resp.StatusCode, nil
}

// isDuplicateMessage sniffs the provider's error text the same way the
// client SDKs do; the admin API has no stable machine code for the
// duplicate-account condition.
func isDuplicateMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "already registered") ||
		strings.Contains(lower, "already exists") ||
		strings.Contains(lower, "duplicate")
}
