package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"shaderlex/internal/observ"
	"shaderlex/internal/prof"
	"shaderlex/internal/version"
)

var log = commonlog.GetLogger("shaderlex")

var rootCmd = &cobra.Command{
	Use:   "shaderlex",
	Short: "GLSL shader tokenizer",
	Long:  `shaderlex splits GLSL shader sources into tokens and reports lexical errors`,

	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

// profiling is started by setupRun and stopped by main.
var profiling *prof.Session

// exitStatus ends the process with code after cleanup. It carries no message.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// main registers subcommands and global flags, then runs the root command.
// An exitStatus error sets the exit code; any other error is printed and
// exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lspCmd)
	rootCmd.AddCommand(versionCmd)

	addRootFlags(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if profErr := profiling.Stop(); profErr != nil {
		fmt.Fprintf(os.Stderr, "failed to write profiles: %v\n", profErr)
	}
	var status exitStatus
	switch {
	case err == nil:
	case errors.As(err, &status):
		os.Exit(int(status))
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Int("max-diagnostics", defaultMaxDiagnostics, "maximum number of diagnostics per file (0 = unlimited)")
	flags.String("config", "", "path to shaderlex.toml (default: search upwards from the target)")
	flags.String("log-level", "warning", "log level (none|error|warning|notice|info|debug)")
	flags.Bool("timings", false, "print time spent per phase to stderr")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")
}

func setupRun(cmd *cobra.Command, args []string) error {
	if err := configureLogging(cmd, args); err != nil {
		return err
	}
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	profiling, err = prof.Start(cfg)
	return err
}

// newTimer returns a phase timer when --timings is set.
func newTimer(cmd *cobra.Command) *observ.Timer {
	if on, _ := cmd.Root().PersistentFlags().GetBool("timings"); on {
		return observ.NewTimer()
	}
	return nil
}

func printTimings(w io.Writer, timer *observ.Timer) {
	if timer != nil {
		fmt.Fprint(w, timer.Summary())
	}
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	level, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	verbosity, err := logVerbosity(level)
	if err != nil {
		return err
	}
	commonlog.Configure(verbosity, nil)
	return nil
}

// logVerbosity maps a level name to commonlog verbosity.
func logVerbosity(level string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "none", "off":
		return -4, nil
	case "error":
		return -2, nil
	case "", "warning", "warn":
		return -1, nil
	case "notice":
		return 0, nil
	case "info":
		return 1, nil
	case "debug":
		return 2, nil
	default:
		return 0, fmt.Errorf("invalid --log-level value %q", level)
	}
}

// useColor resolves the --color flag for output going to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(value) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
