package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteText writes a UTF-8 text fixture at path, creating parent
// directories as needed, and returns the path.
func WriteText(t testing.TB, path, text string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
