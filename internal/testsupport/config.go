package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"wordmill/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// Word-cloud rendering and display start disabled so tests never shell out
// unless they opt back in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.RankingPath = filepath.Join(base, "outputs", "ranking.txt")
	cfgVal.WordCloud.Enabled = false
	cfgVal.WordCloud.Display = false
	cfgVal.WordCloud.ImagePath = filepath.Join(base, "outputs", "word_cloud.png")
	cfgVal.History.Path = filepath.Join(base, "history.db")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithWordCloud enables rendering through the given renderer command.
// Display stays off so tests never open an image viewer.
func WithWordCloud(renderer string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.WordCloud.Enabled = true
		b.cfg.WordCloud.Renderer = renderer
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the configured renderer and
// viewer commands are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{b.cfg.WordCloud.Renderer, b.cfg.WordCloud.Viewer}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}
