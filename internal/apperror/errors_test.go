package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"conflict", Conflict("class", 2, "overlaps"), ErrConflict},
		{"not found", NotFound("trainer", 7), ErrNotFound},
		{"validation", Validation("date", "bad date"), ErrValidation},
		{"storage", Storage("get class", errors.New("boom")), ErrStorage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("op: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := Conflict("class", 2, "trainer #3 is busy")
	assert.Equal(t, "trainer #3 is busy (2 conflicting class)", err.Error())

	err = Conflict("availability window", 0, "no window")
	assert.Equal(t, "no window", err.Error())
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("count classes", cause)
	require.ErrorIs(t, err, cause)
	assert.NotContains(t, UserMessage(err), "connection refused")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "use YYYY-MM-DD", UserMessage(fmt.Errorf("wrap: %w", Validation("date", "use YYYY-MM-DD"))))
	assert.Equal(t, "room #4 not found", UserMessage(NotFound("room", 4)))
}
