package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrEmailRegistered reports the duplicate-account condition: an
	// identity with this email already exists. Callers reconcile via
	// GetUserByEmail instead of treating it as fatal.
	ErrEmailRegistered = errors.New("email already registered")
	ErrUserNotFound    = errors.New("identity user not found")
)

type CreateUserParams struct {
	Email    string
	Password string
	// Confirm marks the account email-confirmed at creation. Username
	// signups have no verification step, so the synthetic email must
	// be pre-confirmed or the account could never sign in.
	Confirm  bool
	Metadata map[string]string
}

// Store is the identity provider's admin surface. The provider owns
// the account and its uid; this service never mutates either beyond
// the initial create.
type Store interface {
	CreateUser(ctx context.Context, params CreateUserParams) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (uuid.UUID, error)
}
