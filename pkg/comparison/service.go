// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package comparison

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/semvercmp/pkg/defaults"
	cmperrors "github.com/NVIDIA/semvercmp/pkg/errors"
	"github.com/NVIDIA/semvercmp/pkg/header"
	"github.com/NVIDIA/semvercmp/pkg/semver"
)

// Argument names used in error context.
const (
	ArgumentA = "a"
	ArgumentB = "b"
)

// Service compares and validates version strings and wraps the outcome in
// documents suitable for the CLI and the API.
type Service struct {
	// Version is stamped into document metadata (typically the tool version).
	Version string

	// MaxBulk is the maximum number of versions accepted by Validate.
	MaxBulk int

	// Concurrency bounds the number of versions validated in parallel.
	Concurrency int
}

// Option is a functional option for configuring Service instances.
type Option func(*Service)

// WithVersion returns an Option that sets the version stamped into documents.
func WithVersion(version string) Option {
	return func(s *Service) {
		s.Version = version
	}
}

// WithMaxBulk returns an Option that limits the size of a validation request.
func WithMaxBulk(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.MaxBulk = n
		}
	}
}

// WithConcurrency returns an Option that bounds parallel validation.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.Concurrency = n
		}
	}
}

// New creates a new Service with the provided options.
func New(opts ...Option) *Service {
	s := &Service{
		MaxBulk:     defaults.MaxBulkVersions,
		Concurrency: defaults.ValidateConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compare parses both inputs and returns their precedence relation.
// A parse failure is returned as an INVALID_FORMAT error whose context names
// the offending argument, value and reason.
func (s *Service) Compare(ctx context.Context, a, b string) (*Comparison, error) {
	if err := ctx.Err(); err != nil {
		return nil, cmperrors.Wrap(cmperrors.ErrCodeTimeout, "comparison canceled", err)
	}

	va, err := parseArgument(ArgumentA, a)
	if err != nil {
		return nil, err
	}
	vb, err := parseArgument(ArgumentB, b)
	if err != nil {
		return nil, err
	}

	result := semver.Compare(va, vb)
	comparisonsTotal.WithLabelValues(result.Word()).Inc()

	slog.Debug("compared versions",
		"a", a,
		"b", b,
		"result", int(result),
	)

	c := &Comparison{
		A:        NewVersionInfo(va),
		B:        NewVersionInfo(vb),
		Result:   result,
		Relation: result.Word(),
	}
	c.Init(header.KindComparison, s.Version)
	return c, nil
}

// Validate checks every input against the grammar. Invalid inputs are
// reported per entry rather than as an error; an error is returned only for
// an empty or oversized request or a canceled context.
func (s *Service) Validate(ctx context.Context, values []string) (*ValidationResult, error) {
	if len(values) == 0 {
		return nil, cmperrors.New(cmperrors.ErrCodeInvalidRequest, "no versions to validate")
	}
	if len(values) > s.MaxBulk {
		return nil, cmperrors.NewWithContext(cmperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("too many versions: %d exceeds limit of %d", len(values), s.MaxBulk),
			map[string]any{"count": len(values), "limit": s.MaxBulk})
	}

	validationBatchSize.Observe(float64(len(values)))

	results := make([]VersionValidation, len(values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for i, value := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = validateOne(value)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cmperrors.Wrap(cmperrors.ErrCodeTimeout, "validation canceled", err)
	}

	out := NewValidationResult()
	out.Init(header.KindValidationResult, s.Version)
	out.Results = results
	out.Summary.Total = len(results)
	for _, r := range results {
		if r.Valid {
			out.Summary.Valid++
		} else {
			out.Summary.Invalid++
		}
	}
	out.Summary.Status = ValidationStatusPass
	if out.Summary.Invalid > 0 {
		out.Summary.Status = ValidationStatusFail
	}

	slog.Debug("validated versions",
		"total", out.Summary.Total,
		"invalid", out.Summary.Invalid,
	)
	return out, nil
}

func validateOne(value string) VersionValidation {
	v, err := semver.Parse(value)
	if err != nil {
		entry := VersionValidation{Value: value, Reason: err.Error()}
		var ife *semver.InvalidFormatError
		if errors.As(err, &ife) {
			offset := ife.Offset
			entry.Reason = ife.Reason.String()
			entry.Offset = &offset
		}
		recordInvalid(entry.Reason)
		return entry
	}

	validationsTotal.WithLabelValues("valid").Inc()
	info := NewVersionInfo(v)
	return VersionValidation{Value: value, Valid: true, Version: &info}
}

func parseArgument(argument, value string) (semver.Version, error) {
	v, err := semver.Parse(value)
	if err == nil {
		return v, nil
	}

	details := map[string]any{
		"argument": argument,
		"value":    value,
	}
	var ife *semver.InvalidFormatError
	if errors.As(err, &ife) {
		details["reason"] = ife.Reason.String()
		details["offset"] = ife.Offset
		recordInvalid(ife.Reason.String())
	}
	return semver.Version{}, cmperrors.WrapWithContext(cmperrors.ErrCodeInvalidFormat,
		fmt.Sprintf("invalid version for argument %s", argument), err, details)
}
