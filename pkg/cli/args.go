/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/urfave/cli/v3"
)

type rawArgsKey struct{}

// run executes root with args and keeps the untouched argument list in ctx
// for operands.
func run(ctx context.Context, root *cli.Command, args []string) error {
	return root.Run(context.WithValue(ctx, rawArgsKey{}, slices.Clone(args)), args)
}

// operands returns the positional arguments of cmd exactly as typed. The
// urfave/cli parser trims every argument and stops at the first empty one,
// which would hide invalid input such as " 1.0.0" or "". Flags that follow
// an empty argument were never parsed, so they are applied here.
func operands(ctx context.Context, cmd *cli.Command) ([]string, error) {
	raw, ok := ctx.Value(rawArgsKey{}).([]string)
	if !ok || len(raw) == 0 {
		return cmd.Args().Slice(), nil
	}

	lineage := cmd.Lineage()
	slices.Reverse(lineage)

	rest := raw[1:]
	for i := 1; i < len(lineage); i++ {
		var found bool
		if rest, found = skipToCommand(lineage[i-1], lineage[i], rest); !found {
			return cmd.Args().Slice(), nil
		}
	}

	var (
		out    []string
		parsed = true
	)
	for i := 0; i < len(rest); i++ {
		arg := rest[i]

		if arg == "--" {
			return append(out, rest[i+1:]...), nil
		}

		if !isFlagArg(arg) {
			if len(arg) > 1 && arg[0] == '-' {
				// "-1" and friends end flag parsing
				return append(out, rest[i:]...), nil
			}
			out = append(out, arg)
			if strings.TrimSpace(arg) == "" || arg == "-" {
				parsed = false
			}
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		f := lookupFlag(cmd, name)
		if f == nil {
			if !parsed {
				return nil, fmt.Errorf("flag provided but not defined: -%s", name)
			}
			continue
		}
		if !isBoolFlag(f) && !hasValue {
			if i+1 >= len(rest) {
				return nil, fmt.Errorf("flag needs an argument: %s", arg)
			}
			i++
			value = rest[i]
		}
		if parsed {
			continue
		}
		if isBoolFlag(f) && !hasValue {
			value = "true"
		}
		if err := cmd.Set(name, value); err != nil {
			return nil, fmt.Errorf("invalid value %q for flag -%s: %w", value, name, err)
		}
	}
	return out, nil
}

// skipToCommand consumes parent's flags and returns the arguments after the
// name of child.
func skipToCommand(parent, child *cli.Command, args []string) ([]string, bool) {
	for i := 0; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])
		if arg == child.Name || slices.Contains(child.Aliases, arg) {
			return args[i+1:], true
		}
		if !isFlagArg(arg) {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if f := lookupFlag(parent, name); f != nil && !isBoolFlag(f) && !hasValue {
			i++
		}
	}
	return nil, false
}

func isFlagArg(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	return arg[1] == '-' || unicode.IsLetter(rune(arg[1]))
}

func lookupFlag(cmd *cli.Command, name string) cli.Flag {
	for _, c := range cmd.Lineage() {
		for _, f := range c.Flags {
			if slices.Contains(f.Names(), name) {
				return f
			}
		}
	}
	return nil
}

func isBoolFlag(f cli.Flag) bool {
	bf, ok := f.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}
