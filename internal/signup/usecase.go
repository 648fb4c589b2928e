package signup

import (
	"context"
)

// SignupUsecase maps a human-chosen handle to an identity-provider
// account and a profile row. The flow is safe to re-invoke with the
// same arguments after any failure: every step is read-only,
// idempotent on uid, or covered by the duplicate-email reconciliation.
type SignupUsecase interface {
	Signup(ctx context.Context, cmd Command) (*Result, error)
}
