package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"wordmill/internal/config"
	"wordmill/internal/deps"
	"wordmill/internal/history"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external dependencies and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)
			problems := 0

			for _, line := range sectionHeader("Configuration", colorize) {
				fmt.Fprintln(stdout, line)
			}
			configDetail := ctx.configPath
			if !ctx.configExists {
				configDetail += " (defaults in use)"
			}
			fmt.Fprintln(stdout, checkLine("Config", checkInfo, configDetail, colorize))
			fmt.Fprintln(stdout)

			for _, line := range sectionHeader("Dependencies", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, dep := range deps.CheckSystemDeps(cfg) {
				switch {
				case dep.Available:
					fmt.Fprintln(stdout, checkLine(dep.Name, checkOK, fmt.Sprintf("Ready (command: %s)", dep.Command), colorize))
				case dep.Optional:
					fmt.Fprintln(stdout, checkLine(dep.Name, checkWarn, dep.Detail, colorize))
				default:
					fmt.Fprintln(stdout, checkLine(dep.Name, checkError, dep.Detail, colorize))
					problems++
				}
			}
			fmt.Fprintln(stdout)

			for _, line := range sectionHeader("Directories", colorize) {
				fmt.Fprintln(stdout, line)
			}
			for _, result := range directoryChecks(cfg) {
				kind := checkOK
				if !result.Passed {
					kind = checkError
					problems++
				}
				fmt.Fprintln(stdout, checkLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(stdout)

			for _, line := range sectionHeader("History", colorize) {
				fmt.Fprintln(stdout, line)
			}
			if cfg.History.Enabled {
				store, err := history.Open(cfg)
				if err != nil {
					fmt.Fprintln(stdout, checkLine("Database", checkError, err.Error(), colorize))
					problems++
				} else {
					records, listErr := store.List(cmd.Context(), 0)
					store.Close() //nolint:errcheck
					if listErr != nil {
						fmt.Fprintln(stdout, checkLine("Database", checkError, listErr.Error(), colorize))
						problems++
					} else {
						detail := fmt.Sprintf("%d runs recorded at %s", len(records), cfg.History.Path)
						fmt.Fprintln(stdout, checkLine("Database", checkOK, detail, colorize))
					}
				}
			} else {
				fmt.Fprintln(stdout, checkLine("Database", checkInfo, "history recording disabled", colorize))
			}

			if problems > 0 {
				return fmt.Errorf("doctor found %d failing checks", problems)
			}
			return nil
		},
	}
}

// directoryChecks verifies every directory the tool writes into.
func directoryChecks(cfg *config.Config) []deps.Result {
	results := []deps.Result{
		deps.CheckDirectoryAccess("Report directory", filepath.Dir(cfg.Output.RankingPath)),
	}
	if cfg.WordCloud.Enabled {
		results = append(results, deps.CheckDirectoryAccess("Image directory", filepath.Dir(cfg.WordCloud.ImagePath)))
	}
	if cfg.History.Enabled {
		results = append(results, deps.CheckDirectoryAccess("History directory", filepath.Dir(cfg.History.Path)))
	}
	return results
}

type checkKind int

const (
	checkInfo checkKind = iota
	checkOK
	checkWarn
	checkError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	checkLabelWidth = 20
	checkIndent     = "  "
)

func checkLine(label string, kind checkKind, message string, colorize bool) string {
	status := fmt.Sprintf("[%s]", checkKindLabel(kind))
	if message != "" {
		status = fmt.Sprintf("[%s] %s", checkKindLabel(kind), message)
	}
	base := fmt.Sprintf("%s%-*s %s", checkIndent, checkLabelWidth, label+":", status)
	if colorize {
		if color := checkKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func checkKindLabel(kind checkKind) string {
	switch kind {
	case checkOK:
		return "OK"
	case checkWarn:
		return "WARN"
	case checkError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func checkKindColor(kind checkKind) string {
	switch kind {
	case checkOK:
		return ansiGreen
	case checkWarn:
		return ansiYellow
	case checkError:
		return ansiRed
	case checkInfo:
		return ansiBlue
	default:
		return ""
	}
}

func sectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
