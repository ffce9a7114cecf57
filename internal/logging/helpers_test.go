package logging

import (
	"os"
	"testing"
)

// unsetenv removes key for the duration of the test. t.Setenv must have
// been called for key first so the original value is restored.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetenv %s: %v", key, err)
	}
}
