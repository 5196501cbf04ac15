package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/calcpath/solver"
)

var (
	// Global flags
	jsonOutput  bool
	noColor     bool
	dumpMetrics bool
	logLevel    string
	logFormat   string

	// Per-run collaborators, set up in PersistentPreRunE
	logger  *slog.Logger
	metrics *solver.Metrics
)

// rootCmd is the root command for calcpath.
var rootCmd = &cobra.Command{
	Use:     "calcpath",
	Version: "dev",
	Short:   "Shortest key sequences for calculator puzzles",
	Long: `calcpath finds the fewest key presses that turn a calculator's starting
display into a target display, using only the keys a puzzle allows.

Keys that paste a stored value are preceded by the STORE presses they need.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		l, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		metrics = nil
		if dumpMetrics {
			metrics = solver.NewMetrics()
		}
		return nil
	},
}

// SetVersion overrides the version reported by --version and "version".
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "Write Prometheus metrics to stderr after the run")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(solveCmd, batchCmd, &cobra.Command{
		Use:   "version",
		Short: "Print the calcpath version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds a slog.Logger writing to w. It does not set the global
// logger.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", levelStr)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", formatStr)
	}
}

// reportMetrics wraps a RunE so that --metrics output is written however
// the command ends, a non-zero exit included.
func reportMetrics(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if metrics == nil {
				return
			}
			if werr := metrics.WriteText(cmd.ErrOrStderr()); werr != nil && err == nil {
				err = werr
			}
		}()
		return run(cmd, args)
	}
}

// newSolver builds a Solver wired to the run's logger and metrics.
func newSolver(opts ...solver.Option) *solver.Solver {
	base := []solver.Option{solver.WithLogger(logger)}
	if metrics != nil {
		base = append(base, solver.WithMetrics(metrics))
	}
	return solver.New(append(base, opts...)...)
}

// ExitError carries a process exit code. A nil Err means the message has
// already been printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }
