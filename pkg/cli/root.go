/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semvercmp/pkg/logging"
	"github.com/NVIDIA/semvercmp/pkg/serializer"
)

const (
	name           = "semvercmp"
	versionDefault = "dev"

	// EnvVarFormat overrides the default output format.
	EnvVarFormat = "SEMVERCMP_FORMAT"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags are built per command; urfave/cli keeps parsed state on the flag value.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatText),
		Sources: cli.EnvVars(EnvVarFormat),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate and compare Semantic Versioning 2.0.0 strings",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `semvercmp validates version strings against the Semantic Versioning 2.0.0
grammar and compares two versions by precedence.

compare  - prints -1, 0 or 1 when the first version is lower, equal or higher.
validate - reports whether each version is valid and why not.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
				Usage:   "Log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging (same as --log-level=debug)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultCLILogger(logLevel(cmd))
			return ctx, nil
		},
		Commands: []*cli.Command{
			compareCmd(),
			validateCmd(),
			versionCmd(),
		},
	}
}

func logLevel(cmd *cli.Command) string {
	if cmd.Bool("debug") {
		return "debug"
	}
	return cmd.String("log-level")
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newRootCmd(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// newOutputWriter writes to --output when set, otherwise to the root
// command's writer so output can be captured.
func newOutputWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, stdout(cmd))
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
