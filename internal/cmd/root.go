package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/minigrep/internal/config"
	"github.com/harrison/minigrep/internal/logger"
	"github.com/harrison/minigrep/internal/report"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep [flags] QUERY FILE...",
		Short: "Search files for lines containing a query",
		Long: `minigrep scans each FILE line by line and prints every line that
contains QUERY, prefixed by its line number, with the first occurrence
of QUERY highlighted. Files are searched in the order given and each file
with matches is introduced by its name.

Matching is case-insensitive unless the CASE_SENSITIVE environment
variable is set (to any value, even empty) or --case-sensitive is given.

Configuration is loaded from $MINIGREP_HOME/config.yaml (default
~/.minigrep/config.yaml) if present. The environment overrides the
config file and CLI flags override both.

Examples:
  minigrep to poem.txt
  CASE_SENSITIVE=1 minigrep Body poem.txt notes.txt
  minigrep --ignore-case --color=always rust *.md
  minigrep -- -v flags.txt            # query starting with a dash

Exit code: 0 on success (even with no matches), 1 on any error`,
		Version:       Version,
		Args:          queryAndFiles,
		RunE:          runSearchCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: $MINIGREP_HOME/config.yaml)")
	cmd.Flags().BoolP("case-sensitive", "s", false, "Match case exactly (overrides CASE_SENSITIVE and config)")
	cmd.Flags().BoolP("ignore-case", "i", false, "Ignore case (overrides CASE_SENSITIVE and config)")
	cmd.Flags().String("color", "", "Highlight matches: auto, always or never (default from config: auto)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Also write a run log into this directory")
	cmd.MarkFlagsMutuallyExclusive("case-sensitive", "ignore-case")

	return cmd
}

// queryAndFiles requires a query followed by at least one file.
func queryAndFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("not enough arguments: need a query and at least one file, got %d argument(s)", len(args))
	}
	return nil
}

// runSearchCommand resolves configuration and runs the search
func runSearchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}

	colored, err := report.UseColor(cfg.Color, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	log, fileLog, err := buildLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	if fileLog != nil {
		defer fileLog.Close()
	}

	log.LogDebug(fmt.Sprintf("query=%q files=%d case_sensitive=%v color=%v", args[0], len(args)-1, cfg.CaseSensitive, colored))

	_, err = Run(RunOptions{
		Query:         args[0],
		Files:         args[1:],
		CaseSensitive: cfg.CaseSensitive,
		Out:           cmd.OutOrStdout(),
		Marker:        report.NewMarker(colored),
		Logger:        log,
	})
	if err != nil && fileLog != nil {
		// stderr gets the error from main; the run log needs its own copy
		fileLog.LogError(err.Error())
	}
	return err
}

// resolveConfig layers config file, environment and flags, in that order.
func resolveConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		configPath = defaultPath
	} else if _, err := os.Stat(configPath); err != nil {
		// An explicitly named config file must exist
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	cfg.ApplyEnv(lookupEnv)

	var caseSensitive *bool
	if cmd.Flags().Changed("case-sensitive") {
		v, _ := cmd.Flags().GetBool("case-sensitive")
		caseSensitive = &v
	}
	if ignore, _ := cmd.Flags().GetBool("ignore-case"); ignore {
		v := false
		caseSensitive = &v
	}

	var color, logLevel, logDir *string
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		color = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDir = &v
	}

	cfg.MergeWithFlags(caseSensitive, color, logLevel, logDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// buildLogger returns the console logger, plus a file logger when a log
// directory is configured. The returned FileLogger must be closed by the caller.
func buildLogger(stderr io.Writer, cfg *config.Config) (logger.Logger, *logger.FileLogger, error) {
	console := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	if cfg.LogDir == "" {
		return console, nil, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run log: %w", err)
	}

	return logger.NewMultiLogger(console, fileLog), fileLog, nil
}
