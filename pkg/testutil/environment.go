package testutil

import (
	"os"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of every physq environment variable.
const EnvPrefix = "PHYSQ_"

// IsolateEnv unsets every PHYSQ_* variable for the duration of the test,
// then applies env. Logging to a file is disabled unless env says
// otherwise. Tests using it cannot run in parallel.
func IsolateEnv(t *testing.T, env map[string]string) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		// Setenv registers the restore; the value is then removed.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	t.Setenv(EnvPrefix+"LOGGING_DISABLE_FILE", "true")
	for key, value := range env {
		t.Setenv(key, value)
	}
}
