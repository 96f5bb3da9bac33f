package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"albumdupes/internal/catalog"
	"albumdupes/internal/config"
	"albumdupes/internal/dupes"
	"albumdupes/internal/fileutil"
	"albumdupes/internal/logging"
	"albumdupes/internal/report"
	"albumdupes/internal/source"
)

const stdinInput = "-"

type scanFlags struct {
	input        string
	threshold    float64
	output       string
	format       string
	algorithm    string
	sheet        string
	artistColumn int
	albumColumn  int
	logLevel     string
	logFormat    string
}

// applyFlags overlays explicitly set flags on a copy of the loaded config.
func applyFlags(cmd *cobra.Command, base *config.Config, opts scanFlags) (config.Config, error) {
	cfg := config.Default()
	if base != nil {
		cfg = *base
	}
	flags := cmd.Flags()

	if flags.Changed("threshold") {
		if err := config.ValidateThreshold(opts.threshold); err != nil {
			return cfg, fmt.Errorf("--threshold %w", err)
		}
		cfg.Matching.Threshold = opts.threshold
	}
	if flags.Changed("algorithm") {
		cfg.Matching.Algorithm = strings.ToLower(strings.TrimSpace(opts.algorithm))
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if flags.Changed("output") {
		path, err := config.ExpandPath(strings.TrimSpace(opts.output))
		if err != nil {
			return cfg, fmt.Errorf("--output: %w", err)
		}
		cfg.Output.Path = path
	}
	if flags.Changed("sheet") {
		cfg.Input.Sheet = strings.TrimSpace(opts.sheet)
	}
	if flags.Changed("artist-column") {
		cfg.Input.ArtistColumn = opts.artistColumn
	}
	if flags.Changed("album-column") {
		cfg.Input.AlbumColumn = opts.albumColumn
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(opts.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(opts.logFormat))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runScan(cmd *cobra.Command, ctx *commandContext, input string, opts scanFlags) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := applyFlags(cmd, base, opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, closeLog, err := logging.NewFromConfig(&cfg, runID)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = closeLog() }()
	logCtx := logging.WithInput(cmd.Context(), input)
	logger = logging.WithContext(logCtx, logger)
	cliLogger := logging.NewComponentLogger(logger, "cli")

	if ctx.configExists {
		cliLogger.Debug("configuration loaded", logging.String("path", ctx.configPath))
	}

	records, err := readInput(cmd, input, cfg, logger)
	if err != nil {
		cliLogger.Debug("input read failed", logging.Error(err))
		return err
	}

	finder, err := dupes.New(dupes.Options{
		Threshold: cfg.Matching.Threshold,
		Algorithm: cfg.Matching.Algorithm,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	result := finder.Find(records)

	stderr := cmd.ErrOrStderr()
	if err := report.WriteDiagnostics(stderr, result, report.ShouldColorize(stderr)); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, cfg.Output.Format, result, report.Meta{RunID: runID}); err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := writeReport(cfg.Output.Path, buf.Bytes()); err != nil {
		return err
	}
	cliLogger.Info("report written",
		logging.String("path", cfg.Output.Path),
		logging.Int("groups", len(result.Groups)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", cfg.Output.Path)
	return nil
}

func readInput(cmd *cobra.Command, input string, cfg config.Config, logger *slog.Logger) ([]catalog.Record, error) {
	if input == stdinInput {
		return source.ReadText(cmd.InOrStdin())
	}
	return source.Read(input, source.Options{
		Sheet:        cfg.Input.Sheet,
		ArtistColumn: cfg.Input.ArtistColumn,
		AlbumColumn:  cfg.Input.AlbumColumn,
		Logger:       logger,
	})
}

func writeReport(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
