package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/projectmanager/internal/config"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

func TestFail_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"not found", fmt.Errorf("move: %w", models.ErrNotFound), "PROJECT_NOT_FOUND", ExitNotFound},
		{"invalid state", models.ErrInvalidState, "INVALID_STATE", ExitValidation},
		{"validation", &models.ValidationError{Field: "deadline", Err: models.ErrDeadlineInPast}, "VALIDATION_ERROR", ExitValidation},
		{"bad id", fmt.Errorf("%w %q", errInvalidID, "nope"), "INVALID_ID", ExitUsage},
		{"other", errors.New("disk full"), "SAVE_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newBufferedFormatter(true, false)

			err := Fail(formatter, "SAVE_ERROR", tt.err)

			assert.Equal(t, tt.wantExit, ExitCode(err))
			assert.True(t, IsReported(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, out.String(), tt.wantCode)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.False(t, IsReported(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", &CommandError{Code: ExitNotFound, Err: models.ErrNotFound})
	assert.Equal(t, ExitNotFound, ExitCode(wrapped))
}

func TestParseProjectID(t *testing.T) {
	id := uuid.New()

	got, err := ParseProjectID("  " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseProjectID("42")
	assert.ErrorIs(t, err, errInvalidID)
}

func TestParseDeadlineFlag(t *testing.T) {
	now := time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

	got, err := ParseDeadlineFlag("", now)
	require.NoError(t, err)
	assert.Equal(t, models.EndOfDay(now), got)

	got, err = ParseDeadlineFlag("2026-06-01", now)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 23, got.Hour())

	_, err = ParseDeadlineFlag("June first", now)
	assert.True(t, models.IsValidation(err))
}

func TestConfigFromContext(t *testing.T) {
	cfg := &config.Config{DatabasePath: "/tmp/board.db"}

	got, err := ConfigFromContext(WithConfig(context.Background(), cfg))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestCloseInjectedAppIsNoop(t *testing.T) {
	c := &CLI{}
	assert.NoError(t, c.Close())

	var nilCLI *CLI
	assert.NoError(t, nilCLI.Close())
}
