package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"albumdupes/internal/report"
	"albumdupes/internal/similarity"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts scanFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "albumdupes [flags] <input | --input path>",
		Short: "Find likely duplicate albums in an \"Artist - Album\" list",
		Long: "albumdupes reads a text, CSV or XLSX album list and reports entries by the\n" +
			"same artist whose album titles are similar enough to be duplicates.\n" +
			"Use \"-\" to read a text list from stdin. An input file named like a\n" +
			"subcommand (config, version) must be given as ./config or with --input.",
		Args:          cobra.MaximumNArgs(1),
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
			input, err := resolveInput(cmd, args, opts.input)
			if err != nil {
				return err
			}
			return runScan(cmd, ctx, input, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Album list to scan (alternative to the positional argument)")
	flags.Float64Var(&opts.threshold, "threshold", 0.85, "Similarity threshold between 0.0 and 1.0")
	flags.StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	flags.StringVar(&opts.format, "format", report.FormatText, fmt.Sprintf("Report format (%s)", strings.Join(report.Formats(), ", ")))
	flags.StringVar(&opts.algorithm, "algorithm", similarity.DefaultAlgorithm, fmt.Sprintf("Similarity algorithm (%s)", strings.Join(similarity.Algorithms(), ", ")))
	flags.StringVar(&opts.sheet, "sheet", "", "XLSX sheet to read (default: first sheet)")
	flags.IntVar(&opts.artistColumn, "artist-column", 1, "1-based artist column for CSV/XLSX input")
	flags.IntVar(&opts.albumColumn, "album-column", 2, "1-based album column for CSV/XLSX input (0 reads the artist column verbatim)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format override (console, json)")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// resolveInput returns the album list named either positionally or via
// --input. Exactly one of the two must be present.
func resolveInput(cmd *cobra.Command, args []string, flagValue string) (string, error) {
	fromFlag := cmd.Flags().Changed("input")
	switch {
	case fromFlag && len(args) > 0:
		return "", fmt.Errorf("input given twice: %q and --input %q", args[0], flagValue)
	case fromFlag:
		if strings.TrimSpace(flagValue) == "" {
			return "", errors.New("--input must not be empty")
		}
		return flagValue, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("an input file is required (pass a path, \"-\" for stdin, or --input)")
	}
}
