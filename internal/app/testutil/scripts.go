package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// WriteScript writes an executable bash script named name into dir and
// returns its path. Tests are skipped when bash is unavailable.
func WriteScript(t testing.TB, dir, name, body string) string {
	t.Helper()

	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	path := filepath.Join(dir, name)
	content := "#!/usr/bin/env bash\n" + body + "\n"
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write script %s: %v", name, err)
	}
	return path
}
