package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordmill/internal/analysis"
	"wordmill/internal/config"
	"wordmill/internal/history"
	"wordmill/internal/input"
	"wordmill/internal/logging"
	"wordmill/internal/report"
	"wordmill/internal/stopwords"
	"wordmill/internal/wordcloud"
)

type analyzeOptions struct {
	file    string
	top     int
	minLen  int
	output  string
	noViz   bool
	jsonOut bool
	stem    bool
	html    bool
}

// runOutput is the machine-readable result emitted by --json.
type runOutput struct {
	RunID  string `json:"run_id"`
	Source string `json:"source"`
	Label  string `json:"label"`
	analysis.Result
	ReportPath string `json:"report_path"`
}

func runAnalyze(cmd *cobra.Command, ctx *commandContext, opts *analyzeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String(logging.FieldRunID, runID))

	started := time.Now()

	source, err := input.Read(input.Options{
		FilePath: opts.file,
		HTML:     opts.html,
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	logger.Debug("input loaded",
		logging.String(logging.FieldSource, source.Origin),
		logging.Int("chars", len(source.Text)))

	analysisOpts, err := buildAnalysisOptions(cfg, cmd, opts)
	if err != nil {
		return err
	}
	result := analysis.Analyze(source.Text, analysisOpts)
	logger.Info("analysis complete",
		logging.String(logging.FieldSource, source.Origin),
		logging.Int("words", result.WordCount),
		logging.Int("distinct", len(result.Frequencies)),
		logging.Duration("elapsed", time.Since(started)))

	outputPath := strings.TrimSpace(opts.output)
	if outputPath == "" {
		outputPath = cfg.Output.RankingPath
	}

	stdout := cmd.OutOrStdout()
	if !opts.jsonOut {
		printResults(stdout, result)
	}

	writer := report.NewWriter(logger)
	if err := writer.Write(cmd.Context(), outputPath, result.Ranked); err != nil {
		return err
	}
	if !opts.jsonOut {
		fmt.Fprintf(stdout, "\nSaved ranking to: %s\n", filepath.ToSlash(outputPath))
	}

	recordRun(cmd.Context(), cfg, logger, history.Record{
		ID:         runID,
		Source:     source.Origin,
		Label:      source.Label,
		CharCount:  result.CharCount,
		WordCount:  result.WordCount,
		Distinct:   len(result.Frequencies),
		TopN:       result.TopN,
		Ranked:     result.Ranked,
		ReportPath: outputPath,
		Duration:   time.Since(started),
	})

	if opts.jsonOut {
		payload := runOutput{
			RunID:      runID,
			Source:     source.Origin,
			Label:      source.Label,
			Result:     result,
			ReportPath: outputPath,
		}
		if err := writeJSON(cmd, payload); err != nil {
			return err
		}
	}

	if cfg.WordCloud.Enabled && !opts.noViz {
		if err := renderCloud(cmd.Context(), cfg, logger, result.Frequencies); err != nil {
			return err
		}
	}
	return nil
}

// buildAnalysisOptions resolves analysis knobs: flags win over config,
// config wins over built-in defaults.
func buildAnalysisOptions(cfg *config.Config, cmd *cobra.Command, opts *analyzeOptions) (analysis.Options, error) {
	topN := cfg.Analysis.TopWords
	if cmd.Flags().Changed("top") {
		topN = opts.top
	}
	minLen := cfg.Analysis.MinTokenLength
	if cmd.Flags().Changed("min-len") {
		minLen = opts.minLen
	}

	stops, err := stopwordSet(cfg)
	if err != nil {
		return analysis.Options{}, err
	}

	resolved := analysis.Options{
		TopN:           topN,
		MinTokenLength: minLen,
		Stopwords:      stops,
	}
	if opts.stem || cfg.Analysis.Stemming {
		stemmer, err := analysis.NewStemmer(cfg.Analysis.StemmerLanguage)
		if err != nil {
			return analysis.Options{}, err
		}
		resolved.Stemmer = stemmer
	}
	return resolved, nil
}

func stopwordSet(cfg *config.Config) (*stopwords.Set, error) {
	stops, err := stopwords.ForLanguages(cfg.Analysis.StopwordLanguages...)
	if err != nil {
		return nil, err
	}
	if len(cfg.Analysis.ExtraStopwords) > 0 {
		stops = stops.With(cfg.Analysis.ExtraStopwords...)
	}
	return stops, nil
}

func printResults(w io.Writer, result analysis.Result) {
	fmt.Fprintln(w, "\n=== RESULTS ===")
	fmt.Fprintf(w, "Characters (including spaces): %d\n", result.CharCount)
	fmt.Fprintf(w, "Words (after cleaning & stopwords removal): %d\n", result.WordCount)
	fmt.Fprintf(w, "\nTop %d Most Frequent Words:\n", result.TopN)
	for _, entry := range result.Ranked {
		fmt.Fprintf(w, "%-15s %d\n", entry.Token, entry.Count)
	}
}

// recordRun persists the run when history is enabled. Failures are logged
// and never fail the analysis itself.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, rec history.Record) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close() //nolint:errcheck
	if _, err := store.Add(ctx, rec); err != nil {
		logger.Warn("record run", logging.Error(err))
	}
}

func renderCloud(ctx context.Context, cfg *config.Config, logger *slog.Logger, freqs map[string]int) error {
	if len(freqs) == 0 {
		logger.Info("skipping word cloud, nothing to render")
		return nil
	}
	client, err := wordcloud.New(cfg.WordCloud, logger)
	if err != nil {
		return err
	}
	dest := cfg.WordCloud.ImagePath
	if err := client.Render(ctx, freqs, dest); err != nil {
		return fmt.Errorf("render word cloud: %w", err)
	}
	if cfg.WordCloud.Display {
		if err := client.Display(ctx, dest); err != nil {
			return fmt.Errorf("display word cloud: %w", err)
		}
	}
	return nil
}
