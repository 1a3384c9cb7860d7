package main

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestDoctorReportsSections(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}

	requireContains(t, out, "== Configuration ==")
	requireContains(t, out, "== Dependencies ==")
	requireContains(t, out, "Word-cloud renderer")
	requireContains(t, out, "== Directories ==")
	requireContains(t, out, "Report directory")
	requireContains(t, out, "== History ==")
	requireContains(t, out, "0 runs recorded")
}

func TestDoctorFailsWhenRequiredRendererMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	content := fmt.Sprintf(`[output]
ranking_path = %q

[wordcloud]
enabled = true
renderer = "definitely-missing-renderer-binary"
image_path = %q
display = false

[history]
enabled = true
path = %q

[logging]
level = "error"
`, env.rankingPath, filepath.Join(env.baseDir, "cloud.png"), env.historyPath)
	writeConfigFile(t, env.configPath, content)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err == nil {
		t.Fatalf("expected doctor to fail, output:\n%s", out)
	}
	requireContains(t, err.Error(), "failing checks")
	requireContains(t, out, "ERROR")
}
