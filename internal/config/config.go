package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Analysis contains tokenizing, filtering, and ranking settings.
type Analysis struct {
	TopWords          int      `toml:"top_words"`
	MinTokenLength    int      `toml:"min_token_length"`
	StopwordLanguages []string `toml:"stopword_languages"`
	ExtraStopwords    []string `toml:"extra_stopwords"`
	Stemming          bool     `toml:"stemming"`
	StemmerLanguage   string   `toml:"stemmer_language"`
}

// Output contains frequency report destination settings.
type Output struct {
	RankingPath string `toml:"ranking_path"`
}

// WordCloud contains configuration for the external word-cloud renderer.
type WordCloud struct {
	Enabled        bool   `toml:"enabled"`
	Renderer       string `toml:"renderer"`
	Viewer         string `toml:"viewer"`
	Width          int    `toml:"width"`
	Height         int    `toml:"height"`
	Background     string `toml:"background"`
	TimeoutSeconds int    `toml:"timeout"`
	ImagePath      string `toml:"image_path"`
	Display        bool   `toml:"display"`
}

// History contains configuration for the local run history database.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for wordmill.
//
// Configuration sections by subsystem:
//   - Analysis: tokenizer, stopword, and ranking knobs
//   - Output: frequency report destination
//   - WordCloud: external renderer and viewer integration
//   - History: local run history database
//   - Logging: log format and level
type Config struct {
	Analysis  Analysis  `toml:"analysis"`
	Output    Output    `toml:"output"`
	WordCloud WordCloud `toml:"wordcloud"`
	History   History   `toml:"history"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/wordmill/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/wordmill/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("wordmill.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories wordmill writes into. Report and
// image directories are created on a best-effort basis so analysis can still
// run when only stdout output is wanted.
func (c *Config) EnsureDirectories() error {
	if c.History.Enabled {
		dir := filepath.Dir(c.History.Path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(strings.TrimSpace(c.Output.RankingPath)); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if c.WordCloud.Enabled {
		if dir := filepath.Dir(strings.TrimSpace(c.WordCloud.ImagePath)); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
	}
	return nil
}

// RendererBinary returns the word-cloud renderer executable name.
func (c *Config) RendererBinary() string {
	return c.WordCloud.Renderer
}

// ViewerBinary returns the image viewer executable name.
func (c *Config) ViewerBinary() string {
	return c.WordCloud.Viewer
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	expanded, err := expandUser(pathValue)
	if err != nil {
		return "", err
	}
	cleaned := filepath.Clean(expanded)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// expandUser resolves a leading tilde without forcing the path absolute, so
// relative report destinations stay relative to the working directory.
func expandUser(pathValue string) (string, error) {
	if !strings.HasPrefix(pathValue, "~") {
		return pathValue, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return pathValue, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
