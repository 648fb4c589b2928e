package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/gitlancederecho/sona-app/config"
	"github.com/gitlancederecho/sona-app/internal/identity"
	"github.com/gitlancederecho/sona-app/internal/profile"
	models "github.com/gitlancederecho/sona-app/internal/profile/model"
	"github.com/gitlancederecho/sona-app/internal/profile/repository"
	"github.com/gitlancederecho/sona-app/internal/signup"
	"github.com/gitlancederecho/sona-app/pkg/errors"
	"github.com/gitlancederecho/sona-app/pkg/logger"
)

// SignupUsecase orchestrates signup across the identity store and the
// profile table. The two stores share no transaction; the one partial
// failure this allows (identity created, profile row missing) is
// recovered on retry through the duplicate-email reconciliation path,
// never prevented.
type SignupUsecase struct {
	profiles   profile.ProfileRepository
	identities identity.Store
	logger     logger.Logger
	config     config.Config
}

func NewSignupUsecase(profiles profile.ProfileRepository, identities identity.Store, logger logger.Logger, config config.Config) *SignupUsecase {
	return &SignupUsecase{profiles: profiles, identities: identities, logger: logger, config: config}
}

func (uc *SignupUsecase) Signup(ctx context.Context, cmd signup.Command) (*signup.Result, error) {
	// fail fast before any external call
	handle := profile.NormalizeHandle(cmd.Handle)
	if err := profile.ValidateHandle(handle); err != nil {
		return nil, err
	}
	if len(cmd.Password) < 6 {
		return nil, errors.ErrWeakCredential
	}

	// Advisory pre-check. Two concurrent signups can both pass this;
	// the unique constraint on handle settles the race at upsert time.
	if exists, err := uc.profiles.HandleExists(ctx, handle); err != nil {
		uc.logger.Error("database error checking handle", "err", err)
		return nil, errors.HandleCheckFailed(err)
	} else if exists {
		return nil, errors.ErrHandleTaken
	}

	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		email = handle + "@" + uc.config.Signup.SyntheticDomain
	}

	uid, err := uc.identities.CreateUser(ctx, identity.CreateUserParams{
		Email:    email,
		Password: cmd.Password,
		Confirm:  true,
		Metadata: map[string]string{"signup_via": "username"},
	})
	if err != nil {
		if !stderrors.Is(err, identity.ErrEmailRegistered) {
			uc.logger.Error("identity creation failed", "email", email, "err", err)
			return nil, errors.IdentityCreateFailed(err)
		}
		// A prior attempt may have created the identity and died
		// before the profile upsert; reuse its uid instead of failing.
		uid, err = uc.identities.GetUserByEmail(ctx, email)
		if err != nil {
			uc.logger.Error("duplicate email could not be resolved to a uid", "email", email, "err", err)
			return nil, errors.IdentityConflict(err)
		}
	}

	p := &models.Profile{
		ID:     uid,
		Handle: handle,
		Name:   strings.TrimSpace(cmd.Name),
	}
	if err := uc.profiles.UpsertProfile(ctx, p); err != nil {
		if stderrors.Is(err, repository.ErrHandleConflict) {
			// lost the handle race between pre-check and upsert
			return nil, errors.HandleTaken(errors.StageUpsertProfile)
		}
		uc.logger.Error("profile upsert failed", "uid", uid, "err", err)
		return nil, errors.ProfileWriteFailed(err)
	}

	return &signup.Result{
		UserID:    uid,
		EmailUsed: email,
		Handle:    handle,
	}, nil
}
