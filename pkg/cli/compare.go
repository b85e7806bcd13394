/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/semvercmp/pkg/comparison"
	"github.com/NVIDIA/semvercmp/pkg/semver"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by precedence",
		ArgsUsage:             "A B",
		Description: `Compare two Semantic Versioning 2.0.0 strings.

In text format the command prints -1 if A has lower precedence than B, 0 if
both have the same precedence and 1 if A has higher precedence. Build metadata
is ignored. Other formats print the full comparison document.

Both arguments are validated first; an invalid version is reported with the
argument it came from and the command exits with status 1.

# Examples

  semvercmp compare 1.0.0-alpha 1.0.0
  -1

  semvercmp compare --format yaml 2.0.0 2.0.0+build.7

Fail unless A is newer than B (useful in scripts):
  semvercmp compare --expect greater 1.2.0 1.1.9`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "expect",
				Usage: "Exit non-zero unless the result matches (-1/0/1, less/equal/greater or </=/>)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := operands(ctx, cmd)
			if err != nil {
				return err
			}
			if len(args) != 2 {
				return fmt.Errorf("compare requires exactly 2 arguments, got %d", len(args))
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			var expected *semver.Result
			if exp := cmd.String("expect"); exp != "" {
				r, parseErr := semver.ParseResult(exp)
				if parseErr != nil {
					return fmt.Errorf("invalid --expect value: %w", parseErr)
				}
				expected = &r
			}

			svc := comparison.New(comparison.WithVersion(version))
			result, err := svc.Compare(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			ser := newOutputWriter(cmd, outFormat)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize comparison: %w", err)
			}

			if expected != nil && result.Result != *expected {
				return fmt.Errorf("unexpected result: %s %s %s, expected %s",
					args[0], result.Result.Symbol(), args[1], expected.Word())
			}

			return nil
		},
	}
}
