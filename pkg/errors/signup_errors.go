package errors

// Stages identify which step of the signup flow produced an error.
// They surface in the wire response for operability; clients branch on
// the code, not the stage.
const (
	StageParseBody     = "parse-body"
	StageValidate      = "validate"
	StageReadEnv       = "read-env"
	StageCheckHandle   = "check-handle"
	StageCreateUser    = "create-user"
	StageLookupAuth    = "lookup-auth"
	StageUpsertProfile = "upsert-profile"
)

var (
	// Domain errors — used in usecase/repository
	ErrInvalidHandle  = NewAt(CodeInvalidArgument, StageValidate, "handle must be 3-30 chars, lowercase letters, numbers and underscores only, no doubled or leading/trailing underscores")
	ErrWeakCredential = NewAt(CodeInvalidArgument, StageValidate, "password must be at least 6 characters")
	ErrHandleTaken    = NewAt(CodeAlreadyExists, StageCheckHandle, "handle already taken")
	ErrProfileMissing = NotFound("profile not found")
	ErrSetlistMissing = NotFound("setlist not found")
	ErrNotOwner       = Forbidden("caller does not own this resource")
)

// HandleTaken reports a lost handle race at a stage other than the
// advisory pre-check (the store constraint is authoritative).
func HandleTaken(stage string) error {
	return NewAt(CodeAlreadyExists, stage, "handle already taken")
}

func IdentityCreateFailed(cause error) error {
	return WrapAt(CodeInternal, StageCreateUser, "identity provider rejected account creation", cause)
}

func IdentityConflict(cause error) error {
	return WrapAt(CodeConflict, StageLookupAuth, "duplicate identity could not be resolved", cause)
}

func ProfileWriteFailed(cause error) error {
	return WrapAt(CodeInternal, StageUpsertProfile, "profile upsert failed", cause)
}

func HandleCheckFailed(cause error) error {
	return WrapAt(CodeInternal, StageCheckHandle, "handle uniqueness check failed", cause)
}

func Configuration(cause error) error {
	return WrapAt(CodeFailedPrecondition, StageReadEnv, "missing required server configuration", cause)
}
