package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureOutput runs fn with os.Stdout redirected and returns what it printed.
// Commands print straight to stdout, so tests swap the file rather than a writer.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	done := make(chan []byte, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.Bytes()
	}()

	fn()

	require.NoError(t, w.Close())
	return string(<-done)
}

// ParseJSON decodes a single JSON object printed by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	result := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}
