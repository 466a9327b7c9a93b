package testutil

import (
	"os"
	"testing"
)

// SetEnv sets key=val for the duration of the test and restores the
// previous value via t.Cleanup. An empty val unsets the variable.
func SetEnv(t *testing.T, key, val string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}
