package profile

import (
	"regexp"
	"strings"

	"github.com/gitlancederecho/sona-app/pkg/errors"
)

var handleCharset = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeHandle folds a proposed handle to the stored form. All
// comparisons and uniqueness checks run on the normalized value.
func NormalizeHandle(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ValidateHandle enforces the handle format: 3-30 chars of lowercase
// letters, digits and underscore, no doubled underscore, no leading or
// trailing underscore. Call with an already-normalized handle.
func ValidateHandle(h string) error {
	if len(h) < 3 || len(h) > 30 {
		return errors.ErrInvalidHandle
	}
	if !handleCharset.MatchString(h) {
		return errors.ErrInvalidHandle
	}
	if strings.Contains(h, "__") {
		return errors.ErrInvalidHandle
	}
	if strings.HasPrefix(h, "_") || strings.HasSuffix(h, "_") {
		return errors.ErrInvalidHandle
	}
	return nil
}
