package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storj.io/payout-report/pkg/config"
	"storj.io/payout-report/pkg/fancy"
	"storj.io/payout-report/pkg/payouts"
	"storj.io/payout-report/pkg/report"
)

type rootFlags struct {
	// Report is the type of report to generate
	Report string

	// ConfigPath is the path to an optional TOML config file
	ConfigPath string

	// LogLevel overrides the log level from the config file
	LogLevel string

	// Progress enables per-file ingestion status on stderr
	Progress bool

	// Paths are the timesheet files to read, in order
	Paths []string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := new(rootFlags)
	registry := report.NewRegistry()
	cmd := &cobra.Command{
		Use:   "payoutreport FILE [FILE...] --report TYPE",
		Short: "Generates employee reports from timesheet CSV files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Paths = args
			return checkCmd(stderr, doReport(flags, registry, stdout, stderr))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       getVersion(),
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(
		&flags.Report,
		"report", "",
		"",
		fmt.Sprintf("Type of report to generate (one of: %s)", strings.Join(registry.Names(), ", ")))
	cmd.Flags().StringVarP(
		&flags.ConfigPath,
		"config", "",
		"",
		"Path to a TOML config file")
	cmd.Flags().StringVarP(
		&flags.LogLevel,
		"log-level", "",
		"",
		"Log level (overrides the config file)")
	cmd.Flags().BoolVarP(
		&flags.Progress,
		"progress", "",
		false,
		"Print the status of each file read to stderr")
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

func doReport(flags *rootFlags, registry *report.Registry, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if flags.LogLevel != "" {
		level, err = zapcore.ParseLevel(flags.LogLevel)
		if err != nil {
			return usageErr.New("invalid log level %q", flags.LogLevel)
		}
	}

	log, err := openConsoleLog(level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	paths, err := expandPaths(flags.Paths)
	if err != nil {
		return err
	}

	aliases := cfg.EmployeeAliases()
	processorConfig := payouts.Config{
		Aliases:  &aliases,
		Registry: registry,
	}
	if flags.Progress {
		processorConfig.UI = &progressUI{out: stderr}
	}

	processor, err := payouts.NewProcessor(log, processorConfig)
	if err != nil {
		return err
	}

	if err := processor.ReadFiles(paths); err != nil {
		return err
	}

	out, ok, err := processor.GenerateReport(flags.Report)
	if err != nil {
		return err
	}
	if !ok {
		fancy.Ferrorf(stderr, "Error: Unknown report type '%s'\n", flags.Report)
		return unknownReportErr.New("%q", flags.Report)
	}

	log.Debug("Writing report", zap.String("report", flags.Report))
	_, err = fmt.Fprint(stdout, out)
	return errs.Wrap(err)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return config.Config{}, usageErr.Wrap(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		if unknown := config.DumpUnknownFields(err); unknown != "" {
			return config.Config{}, errs.New("unable to load config: %v\n%s", err, unknown)
		}
		return config.Config{}, errs.New("unable to load config: %v", err)
	}
	return cfg, nil
}

func expandPaths(paths []string) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		p, err := homedir.Expand(path)
		if err != nil {
			return nil, usageErr.Wrap(err)
		}
		expanded = append(expanded, p)
	}
	return expanded, nil
}

func getVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	return fmt.Sprintf("%s (built with %s)\n", buildInfo.Main.Version, runtime.Version())
}
