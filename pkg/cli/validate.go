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
	"github.com/NVIDIA/semvercmp/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate one or more version strings",
		ArgsUsage:             "[VERSION...]",
		Description: `Validate version strings against the Semantic Versioning 2.0.0 grammar.

Versions are taken from the arguments and, when --file is set, from a YAML,
JSON or TOML document with a "versions" list. Every version is checked; invalid ones
are reported with the reason and byte offset of the first violation.

# Examples

  semvercmp validate 1.0.0 1.0 01.0.0

Validate a list file and fail if any entry is invalid (useful for CI/CD):
  semvercmp validate --file versions.yaml --fail-on-error

Where versions.yaml contains:
  versions:
    - 1.0.0
    - 1.1.0-rc.1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage: `Path/URI to a YAML, JSON or TOML document with a "versions" list.
	Supports: file paths or HTTP/HTTPS URLs.`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any version is invalid",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			versions, err := operands(ctx, cmd)
			if err != nil {
				return err
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if path := cmd.String("file"); path != "" {
				slog.Info("loading versions", "uri", path)

				list, err := serializer.FromFile[comparison.VersionList](ctx, path)
				if err != nil {
					return fmt.Errorf("failed to load versions from %q: %w", path, err)
				}
				versions = append(versions, list.Versions...)
			}

			if len(versions) == 0 {
				return fmt.Errorf("no versions to validate: pass them as arguments or with --file")
			}

			svc := comparison.New(
				comparison.WithVersion(version),
				comparison.WithMaxBulk(len(versions)),
			)

			result, err := svc.Validate(ctx, versions)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			ser := newOutputWriter(cmd, outFormat)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Debug("validation completed",
				"status", result.Summary.Status,
				"valid", result.Summary.Valid,
				"invalid", result.Summary.Invalid)

			if cmd.Bool("fail-on-error") && result.HasInvalid() {
				return fmt.Errorf("validation failed: %d of %d version(s) invalid",
					result.Summary.Invalid, result.Summary.Total)
			}

			return nil
		},
	}
}
