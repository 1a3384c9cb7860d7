package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"wordmill/internal/analysis"
	"wordmill/internal/history"
)

const createdAtDisplay = "2006-01-02 15:04:05"

// runView is the JSON form of a history record.
type runView struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	Source     string           `json:"source"`
	Label      string           `json:"label"`
	CharCount  int              `json:"char_count"`
	WordCount  int              `json:"word_count"`
	Distinct   int              `json:"distinct_count"`
	TopN       int              `json:"top_n"`
	Ranked     []analysis.Entry `json:"ranked"`
	ReportPath string           `json:"report_path"`
	DurationMS int64            `json:"duration_ms"`
}

func newRunView(rec history.Record) runView {
	return runView{
		ID:         rec.ID,
		CreatedAt:  rec.CreatedAt,
		Source:     rec.Source,
		Label:      rec.Label,
		CharCount:  rec.CharCount,
		WordCount:  rec.WordCount,
		Distinct:   rec.Distinct,
		TopN:       rec.TopN,
		Ranked:     rec.Ranked,
		ReportPath: rec.ReportPath,
		DurationMS: rec.Duration.Milliseconds(),
	}
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				records, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOut {
					views := make([]runView, 0, len(records))
					for _, rec := range records {
						views = append(views, newRunView(rec))
					}
					return writeJSON(cmd, views)
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
					return nil
				}
				rows := make([]table.Row, 0, len(records))
				for _, rec := range records {
					rows = append(rows, table.Row{
						shortID(rec.ID),
						rec.CreatedAt.Local().Format(createdAtDisplay),
						rec.Label,
						rec.CharCount,
						rec.WordCount,
						topWordCell(rec.Ranked),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					table.Row{"ID", "Created", "Label", "Chars", "Words", "Top Word"},
					rows,
					4, 5,
				))
				return nil
			})
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum runs to list (0 for all)")
	historyCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit runs as JSON")

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				rec, err := store.Get(cmd.Context(), args[0])
				if errors.Is(err, history.ErrNotFound) {
					return fmt.Errorf("no run matches %q", args[0])
				}
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, newRunView(*rec))
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run:        %s\n", rec.ID)
				fmt.Fprintf(out, "Created:    %s\n", rec.CreatedAt.Local().Format(createdAtDisplay))
				fmt.Fprintf(out, "Source:     %s\n", rec.Source)
				fmt.Fprintf(out, "Label:      %s\n", rec.Label)
				fmt.Fprintf(out, "Characters: %d\n", rec.CharCount)
				fmt.Fprintf(out, "Words:      %d\n", rec.WordCount)
				fmt.Fprintf(out, "Distinct:   %d\n", rec.Distinct)
				fmt.Fprintf(out, "Top N:      %d\n", rec.TopN)
				fmt.Fprintf(out, "Report:     %s\n", rec.ReportPath)
				fmt.Fprintf(out, "Duration:   %s\n", rec.Duration)
				if len(rec.Ranked) == 0 {
					fmt.Fprintln(out, "No ranked words recorded")
					return nil
				}
				rows := make([]table.Row, 0, len(rec.Ranked))
				for _, entry := range rec.Ranked {
					rows = append(rows, table.Row{entry.Token, entry.Count})
				}
				fmt.Fprintln(out, renderTable(table.Row{"Word", "Count"}, rows, 2))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run as JSON")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d runs\n", removed)
				return nil
			})
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func topWordCell(ranked []analysis.Entry) string {
	if len(ranked) == 0 {
		return "-"
	}
	return fmt.Sprintf("%s (%d)", ranked[0].Token, ranked[0].Count)
}
