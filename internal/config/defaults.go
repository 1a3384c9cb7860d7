package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultTopWords        = 15
	defaultMinTokenLength  = 3
	defaultStemmerLanguage = "english"
	defaultRankingPath     = "outputs/word_frequency_top.txt"
	defaultRenderer        = "wordcloud_cli"
	defaultViewer          = "xdg-open"
	defaultCloudWidth      = 1000
	defaultCloudHeight     = 600
	defaultCloudBackground = "white"
	defaultCloudTimeout    = 60
	defaultImagePath       = "outputs/word_cloud.png"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

func defaultStopwordLanguages() []string {
	return []string{"english", "indonesian"}
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "wordmill", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/wordmill/history.db"
	}
	return filepath.Join(home, ".local", "share", "wordmill", "history.db")
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			TopWords:          defaultTopWords,
			MinTokenLength:    defaultMinTokenLength,
			StopwordLanguages: defaultStopwordLanguages(),
			StemmerLanguage:   defaultStemmerLanguage,
		},
		Output: Output{
			RankingPath: defaultRankingPath,
		},
		WordCloud: WordCloud{
			Enabled:        true,
			Renderer:       defaultRenderer,
			Viewer:         defaultViewer,
			Width:          defaultCloudWidth,
			Height:         defaultCloudHeight,
			Background:     defaultCloudBackground,
			TimeoutSeconds: defaultCloudTimeout,
			ImagePath:      defaultImagePath,
			Display:        true,
		},
		History: History{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
