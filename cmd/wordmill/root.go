package main

import (
	"github.com/spf13/cobra"

	"wordmill/internal/analysis"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	opts := &analyzeOptions{}

	rootCmd := &cobra.Command{
		Use:   "wordmill",
		Short: "Analyze word frequencies in text",
		Long: "Wordmill tokenizes text, strips stopwords and short tokens, ranks the\n" +
			"most frequent words, saves the ranking to a file, and optionally renders\n" +
			"a word-cloud image. With no --file it reads from standard input.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Path to a text file to analyze (if omitted, reads standard input)")
	flags.IntVarP(&opts.top, "top", "n", analysis.DefaultTopWords, "Number of most frequent words to display/save")
	flags.IntVar(&opts.minLen, "min-len", analysis.DefaultMinTokenLength, "Minimum token length to keep")
	flags.BoolVar(&opts.noViz, "no-viz", false, "Disable word-cloud rendering")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file for the ranking (default from config)")
	flags.BoolVar(&opts.jsonOut, "json", false, "Emit the analysis result as JSON instead of the plain report")
	flags.BoolVar(&opts.stem, "stem", false, "Fold tokens onto their stems before counting")
	flags.BoolVar(&opts.html, "html", false, "Treat the input as HTML and extract visible text first")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
