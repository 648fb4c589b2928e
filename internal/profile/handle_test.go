package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/gitlancederecho/sona-app/pkg/errors"
)

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "alice_99", NormalizeHandle("  Alice_99 "))
	assert.Equal(t, "bob", NormalizeHandle("BOB"))
}

func TestValidateHandle(t *testing.T) {
	valid := []string{
		"abc",
		"alice_99",
		"a_b_c",
		"user123",
		strings.Repeat("a", 3),
		strings.Repeat("a", 30),
	}
	for _, h := range valid {
		t.Run("accepts "+h, func(t *testing.T) {
			require.NoError(t, ValidateHandle(h))
		})
	}

	invalid := []string{
		"",
		"ab",
		strings.Repeat("a", 31),
		"bob__smith",
		"_bob",
		"bob_",
		"Bob",
		"bob-smith",
		"bob smith",
		"böb",
	}
	for _, h := range invalid {
		t.Run("rejects "+h, func(t *testing.T) {
			err := ValidateHandle(h)
			require.Error(t, err)
			assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
		})
	}
}
