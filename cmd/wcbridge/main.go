package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/wcbridge/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// noColor is set by --no-color.
var noColor bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var e *errors.Error
		if !stderrors.As(err, &e) {
			e = errors.Newf(errors.CategoryCLI, "%s", err)
		}
		fmt.Fprint(os.Stderr, e.Format())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "wcbridge",
		Short: "Expose vdom components as custom elements",
		Long: `wcbridge defines custom elements from a manifest and drives them.

  • render a host page with every element's shadow root inlined
  • serve a development host with an HTTP API and an event stream
  • validate a manifest against the component catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				errors.DisableColors()
			} else {
				errors.EnableColors()
			}
			return setupLogging(cmd, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		validateCmd(),
		versionCmd(),
	)
	return rootCmd
}

func setupLogging(cmd *cobra.Command, level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return errors.Newf(errors.CategoryCLI, "invalid --log-level %q", level)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
	return nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	mark := "\033[32m✓\033[0m"
	if noColor {
		mark = "✓"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}
