package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordmill/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_DATA_HOME", "")
	t.Chdir(tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Analysis.TopWords != 15 {
		t.Fatalf("unexpected top words default: %d", cfg.Analysis.TopWords)
	}
	if cfg.Analysis.MinTokenLength != 3 {
		t.Fatalf("unexpected min token length default: %d", cfg.Analysis.MinTokenLength)
	}
	if len(cfg.Analysis.StopwordLanguages) != 2 || cfg.Analysis.StopwordLanguages[0] != "english" || cfg.Analysis.StopwordLanguages[1] != "indonesian" {
		t.Fatalf("unexpected stopword languages: %v", cfg.Analysis.StopwordLanguages)
	}
	if cfg.Analysis.Stemming {
		t.Fatal("expected stemming disabled by default")
	}
	if cfg.Output.RankingPath != filepath.Join("outputs", "word_frequency_top.txt") {
		t.Fatalf("unexpected ranking path: %q", cfg.Output.RankingPath)
	}
	if !cfg.WordCloud.Enabled {
		t.Fatal("expected word cloud enabled by default")
	}
	if cfg.WordCloud.Renderer != "wordcloud_cli" {
		t.Fatalf("unexpected renderer: %q", cfg.WordCloud.Renderer)
	}
	if cfg.WordCloud.Width != 1000 || cfg.WordCloud.Height != 600 {
		t.Fatalf("unexpected canvas size: %dx%d", cfg.WordCloud.Width, cfg.WordCloud.Height)
	}
	if cfg.WordCloud.Background != "white" {
		t.Fatalf("unexpected background: %q", cfg.WordCloud.Background)
	}
	wantHistory := filepath.Join(tempHome, ".local", "share", "wordmill", "history.db")
	if cfg.History.Path != wantHistory {
		t.Fatalf("unexpected history path: got %q want %q", cfg.History.Path, wantHistory)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	info, err := os.Stat(filepath.Dir(cfg.History.Path))
	if err != nil {
		t.Fatalf("expected history directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", filepath.Dir(cfg.History.Path))
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordmill.toml")

	type payload struct {
		Analysis struct {
			TopWords       int      `toml:"top_words"`
			MinTokenLength int      `toml:"min_token_length"`
			ExtraStopwords []string `toml:"extra_stopwords"`
		} `toml:"analysis"`
		Output struct {
			RankingPath string `toml:"ranking_path"`
		} `toml:"output"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Analysis.TopWords = 25
	custom.Analysis.MinTokenLength = 4
	custom.Analysis.ExtraStopwords = []string{"Lorem", "ipsum", "lorem", " "}
	custom.Output.RankingPath = "reports/ranking.txt"
	custom.Logging.Level = "debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Analysis.TopWords != 25 {
		t.Fatalf("expected top words 25, got %d", cfg.Analysis.TopWords)
	}
	if cfg.Analysis.MinTokenLength != 4 {
		t.Fatalf("expected min token length 4, got %d", cfg.Analysis.MinTokenLength)
	}
	if len(cfg.Analysis.ExtraStopwords) != 2 || cfg.Analysis.ExtraStopwords[0] != "lorem" || cfg.Analysis.ExtraStopwords[1] != "ipsum" {
		t.Fatalf("expected extra stopwords lowercased and deduplicated, got %v", cfg.Analysis.ExtraStopwords)
	}
	if cfg.Output.RankingPath != "reports/ranking.txt" {
		t.Fatalf("expected ranking path override, got %q", cfg.Output.RankingPath)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesRendererAndViewer(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordmill.toml")

	contents := "[wordcloud]\nrenderer = \"file-renderer\"\nviewer = \"file-viewer\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("WORDMILL_RENDERER", "env-renderer")
	t.Setenv("WORDMILL_VIEWER", "env-viewer")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WordCloud.Renderer != "env-renderer" {
		t.Errorf("expected renderer from env, got %q", cfg.WordCloud.Renderer)
	}
	if cfg.WordCloud.Viewer != "env-viewer" {
		t.Errorf("expected viewer from env, got %q", cfg.WordCloud.Viewer)
	}
}

func TestNonsenseValuesFallBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordmill.toml")

	contents := "[analysis]\ntop_words = -3\nmin_token_length = -1\n\n[wordcloud]\nwidth = 0\ntimeout = -10\n\n[logging]\nformat = \"xml\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Analysis.TopWords != 15 {
		t.Fatalf("expected top words default, got %d", cfg.Analysis.TopWords)
	}
	if cfg.Analysis.MinTokenLength != 3 {
		t.Fatalf("expected min token length default, got %d", cfg.Analysis.MinTokenLength)
	}
	if cfg.WordCloud.Width != 1000 {
		t.Fatalf("expected width default, got %d", cfg.WordCloud.Width)
	}
	if cfg.WordCloud.TimeoutSeconds != 60 {
		t.Fatalf("expected timeout default, got %d", cfg.WordCloud.TimeoutSeconds)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected console format fallback, got %q", cfg.Logging.Format)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[analysis]") {
		t.Fatalf("sample config missing analysis section: %s", contents)
	}

	// Validate it decodes
	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Analysis.TopWords != 15 {
		t.Fatalf("expected sample to carry default top words, got %d", cfg.Analysis.TopWords)
	}
	if !cfg.WordCloud.Enabled {
		t.Fatal("expected sample to enable word cloud")
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.TopWords = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive top words")
	}

	cfg = config.Default()
	cfg.Analysis.StopwordLanguages = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty stopword languages")
	}

	cfg = config.Default()
	cfg.Analysis.StopwordLanguages = []string{"english", "klingon"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown stopword language")
	}

	cfg = config.Default()
	cfg.Analysis.StemmerLanguage = "klingon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown stemmer language")
	}

	cfg = config.Default()
	cfg.WordCloud.Enabled = true
	cfg.WordCloud.Renderer = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when word cloud enabled without renderer")
	}

	cfg = config.Default()
	cfg.WordCloud.Enabled = true
	cfg.WordCloud.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive renderer timeout")
	}

	cfg = config.Default()
	cfg.History.Enabled = true
	cfg.History.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when history enabled without path")
	}
}
