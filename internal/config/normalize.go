package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAnalysis()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeWordCloud(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.TopWords <= 0 {
		c.Analysis.TopWords = defaultTopWords
	}
	if c.Analysis.MinTokenLength < 0 {
		c.Analysis.MinTokenLength = defaultMinTokenLength
	}
	c.Analysis.StopwordLanguages = normalizeWordList(c.Analysis.StopwordLanguages)
	if len(c.Analysis.StopwordLanguages) == 0 {
		c.Analysis.StopwordLanguages = defaultStopwordLanguages()
	}
	c.Analysis.ExtraStopwords = normalizeWordList(c.Analysis.ExtraStopwords)
	c.Analysis.StemmerLanguage = strings.ToLower(strings.TrimSpace(c.Analysis.StemmerLanguage))
	if c.Analysis.StemmerLanguage == "" {
		c.Analysis.StemmerLanguage = defaultStemmerLanguage
	}
}

// normalizeWordList lowercases, trims, and deduplicates while preserving order.
func normalizeWordList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func (c *Config) normalizeOutput() error {
	var err error
	c.Output.RankingPath = strings.TrimSpace(c.Output.RankingPath)
	if c.Output.RankingPath == "" {
		c.Output.RankingPath = defaultRankingPath
	}
	if c.Output.RankingPath, err = expandUser(c.Output.RankingPath); err != nil {
		return fmt.Errorf("output.ranking_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeWordCloud() error {
	if value, ok := os.LookupEnv("WORDMILL_RENDERER"); ok && strings.TrimSpace(value) != "" {
		c.WordCloud.Renderer = value
	}
	c.WordCloud.Renderer = strings.TrimSpace(c.WordCloud.Renderer)
	if c.WordCloud.Renderer == "" {
		c.WordCloud.Renderer = defaultRenderer
	}
	if value, ok := os.LookupEnv("WORDMILL_VIEWER"); ok && strings.TrimSpace(value) != "" {
		c.WordCloud.Viewer = value
	}
	c.WordCloud.Viewer = strings.TrimSpace(c.WordCloud.Viewer)
	if c.WordCloud.Viewer == "" {
		c.WordCloud.Viewer = defaultViewer
	}
	if c.WordCloud.Width <= 0 {
		c.WordCloud.Width = defaultCloudWidth
	}
	if c.WordCloud.Height <= 0 {
		c.WordCloud.Height = defaultCloudHeight
	}
	c.WordCloud.Background = strings.TrimSpace(c.WordCloud.Background)
	if c.WordCloud.Background == "" {
		c.WordCloud.Background = defaultCloudBackground
	}
	if c.WordCloud.TimeoutSeconds <= 0 {
		c.WordCloud.TimeoutSeconds = defaultCloudTimeout
	}
	var err error
	c.WordCloud.ImagePath = strings.TrimSpace(c.WordCloud.ImagePath)
	if c.WordCloud.ImagePath == "" {
		c.WordCloud.ImagePath = defaultImagePath
	}
	if c.WordCloud.ImagePath, err = expandUser(c.WordCloud.ImagePath); err != nil {
		return fmt.Errorf("wordcloud.image_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	var err error
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath()
	}
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
