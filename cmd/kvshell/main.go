// Package main provides the kvshell CLI entry point.
// kvshell is an interactive key/value store whose values are typed literals.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"kvshell/internal/config"
	"kvshell/internal/golden"
	"kvshell/internal/logger"
	"kvshell/internal/output"
	"kvshell/internal/session"
	"kvshell/internal/shell"
	"kvshell/internal/version"
)

var (
	cfgFile  string
	detailed bool
	update   bool

	v   = config.NewViper()
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kvshell",
	Short: "kvshell - typed key/value store shell",
	Long: `kvshell is an in-memory key/value store driven by commands such as
set, get, update, delete and list. Values are typed literals: integers,
booleans, text, maps, lists and sets, nested to any depth.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runDefault,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	RunE:  runShell,
}

// batchCmd runs commands from a file, or stdin when the file is "-"
var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Execute commands from a file in batch mode",
	Long: `Execute one command per line from a file without entering interactive mode.
Execution stops at end of input or at the first exit command.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// goldenCmd checks recorded transcripts
var goldenCmd = &cobra.Command{
	Use:   "golden <dir>",
	Short: "Run golden transcript scenarios",
	Long: `Run every YAML scenario in dir and compare each command's output with the
recorded output. Use --update to re-record differing scenarios.

The repository's scenarios live in internal/golden/testdata.`,
	Args: cobra.ExactArgs(1),
	RunE: runGolden,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			output.Println(version.GetDetailedVersion())
			return
		}
		output.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: <user config dir>/kvshell/config.yaml)")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.String(config.KeyColor, output.ColorAuto, "Color output (auto|always|never)")
	flags.String(config.KeyOutput, config.OutputText, "Response format (text|json)")
	flags.String(config.KeyPrompt, "kv> ", "Interactive prompt")

	for _, key := range []string{
		config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode,
		config.KeyColor, config.KeyOutput, config.KeyPrompt,
	} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")
	goldenCmd.Flags().BoolVar(&update, "update", false, "Re-record scenarios whose output differs")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(goldenCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(v, cfgFile, config.DefaultDotEnvPaths())
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}
	output.SetGlobalPrinter(cfg.PrinterFor(os.Stdout))

	if cfg.ConfigFile != "" {
		logger.Debug("Using config file", "path", cfg.ConfigFile)
	}
	return nil
}

// runDefault starts the interactive shell on a terminal and reads commands
// from stdin otherwise.
func runDefault(cmd *cobra.Command, args []string) error {
	if output.IsTerminal(os.Stdin) {
		return runShell(cmd, args)
	}
	return runHandlerBatch(os.Stdin)
}

func newHandler() *shell.Handler {
	var opts []session.Option
	if cfg.TestMode {
		opts = append(opts, session.Deterministic())
	}
	return shell.NewHandler(session.New(opts...), output.GetGlobalPrinter())
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting kvshell", "version", version.Version)

	h := newHandler()
	return h.RunInteractive(shell.Config{
		Prompt: cfg.Prompt,
		Banner: []string{
			fmt.Sprintf("kvshell v%s", version.Version),
			"Type 'help' for commands or 'exit' to quit.",
		},
	})
}

func runBatch(_ *cobra.Command, args []string) error {
	if args[0] == "-" {
		return runHandlerBatch(os.Stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	logger.Debug("Starting batch mode", "version", version.Version, "file", args[0])
	return runHandlerBatch(f)
}

func runHandlerBatch(r io.Reader) error {
	return newHandler().RunBatch(r)
}

func runGolden(cmd *cobra.Command, args []string) error {
	scenarios, err := golden.LoadDir(args[0])
	if err != nil {
		return err
	}
	return golden.NewRunner(update).RunAll(scenarios, cmd.OutOrStdout())
}
