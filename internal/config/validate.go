package config

import (
	"errors"
	"fmt"

	"wordmill/internal/analysis"
	"wordmill/internal/stopwords"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateWordCloud(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopWords <= 0 {
		return errors.New("analysis.top_words must be positive")
	}
	if c.Analysis.MinTokenLength < 0 {
		return errors.New("analysis.min_token_length must be >= 0")
	}
	if len(c.Analysis.StopwordLanguages) == 0 {
		return errors.New("analysis.stopword_languages must include at least one language")
	}
	if _, err := stopwords.ForLanguages(c.Analysis.StopwordLanguages...); err != nil {
		return fmt.Errorf("analysis.stopword_languages: %w", err)
	}
	if _, err := analysis.NewStemmer(c.Analysis.StemmerLanguage); err != nil {
		return fmt.Errorf("analysis.stemmer_language: %w", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.RankingPath == "" {
		return errors.New("output.ranking_path must be set")
	}
	return nil
}

func (c *Config) validateWordCloud() error {
	if !c.WordCloud.Enabled {
		return nil
	}
	if c.WordCloud.Renderer == "" {
		return errors.New("wordcloud.renderer must be set when wordcloud.enabled is true")
	}
	if c.WordCloud.ImagePath == "" {
		return errors.New("wordcloud.image_path must be set when wordcloud.enabled is true")
	}
	if err := ensurePositiveMap(map[string]int{
		"wordcloud.width":   c.WordCloud.Width,
		"wordcloud.height":  c.WordCloud.Height,
		"wordcloud.timeout": c.WordCloud.TimeoutSeconds,
	}); err != nil {
		return err
	}
	if c.WordCloud.Display && c.WordCloud.Viewer == "" {
		return errors.New("wordcloud.viewer must be set when wordcloud.display is true")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
