package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `flowdoc walks you through a fixed set of documentation prompts about a
service's behavior, collects multi-line answers, and writes a plain-text
report. Type 'pause' at any prompt to save progress; run flowdoc again to
resume.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		raw    app.Config
		parsed bool
	)
	cmd := &cobra.Command{
		Use:           "flowdoc",
		Short:         "Interactive service-flow documentation questionnaire",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			parsed = true
			return nil
		},
	}
	cmd.SetOut(output)
	cmd.SetErr(output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	flags := cmd.Flags()
	flags.StringVarP(&raw.FormPath, "form", "f", "", "Path to a .hcl form file or a directory of .hcl files. Defaults to the built-in form.")
	flags.StringVar(&raw.SessionPath, "session", "", "Path of the session snapshot. Defaults to flow_progress.json (json) or flow_progress.db (sqlite).")
	flags.StringVar(&raw.StoreKind, "store", app.StoreJSON, "Session store backend. Options: 'json' or 'sqlite'.")
	flags.StringVar(&raw.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&raw.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.BoolVar(&raw.NoBanner, "no-banner", false, "Do not print the introduction banner.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !parsed {
		slog.Debug("Help requested, exiting.")
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	raw.LogFormat = strings.ToLower(raw.LogFormat)
	if raw.LogFormat != "text" && raw.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	raw.LogLevel = strings.ToLower(raw.LogLevel)
	switch raw.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	raw.StoreKind = strings.ToLower(raw.StoreKind)
	config, err := app.NewConfig(raw)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
