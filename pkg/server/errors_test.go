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

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	cmperrors "github.com/NVIDIA/semvercmp/pkg/errors"
	"github.com/NVIDIA/semvercmp/pkg/semver"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code cmperrors.ErrorCode
		want int
	}{
		{"invalid request", cmperrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"invalid format", cmperrors.ErrCodeInvalidFormat, http.StatusBadRequest},
		{"unauthorized", cmperrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"not found", cmperrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", cmperrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"rate limit", cmperrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", cmperrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", cmperrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", cmperrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", cmperrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code cmperrors.ErrorCode
		want bool
	}{
		{"invalid request", cmperrors.ErrCodeInvalidRequest, false},
		{"invalid format", cmperrors.ErrCodeInvalidFormat, false},
		{"unauthorized", cmperrors.ErrCodeUnauthorized, false},
		{"not found", cmperrors.ErrCodeNotFound, false},
		{"method not allowed", cmperrors.ErrCodeMethodNotAllowed, false},
		{"timeout", cmperrors.ErrCodeTimeout, true},
		{"unavailable", cmperrors.ErrCodeUnavailable, true},
		{"rate limit", cmperrors.ErrCodeRateLimitExceeded, true},
		{"internal", cmperrors.ErrCodeInternal, true},
		{"unknown defaults false", cmperrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got == nil {
			t.Fatal("expected map, got nil")
		}
		if got["a"].(int) != 1 {
			t.Fatalf("expected a=1, got %#v", got["a"])
		}
		if got["b"].(int) != 2 {
			t.Fatalf("expected b=2, got %#v", got["b"])
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
	})
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, cmperrors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(cmperrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", cmperrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatalf("expected retryable=false, got true")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := errors.New("db is down")
	err := cmperrors.WrapWithContext(cmperrors.ErrCodeUnavailable, "service unavailable", cause, map[string]any{"component": "db"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}

	if resp.Code != string(cmperrors.ErrCodeUnavailable) {
		t.Fatalf("expected code %q, got %q", cmperrors.ErrCodeUnavailable, resp.Code)
	}
	if resp.Message != "service unavailable" {
		t.Fatalf("expected message %q, got %q", "service unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil {
		t.Fatalf("expected details, got nil")
	}
	if resp.Details["component"].(string) != "db" {
		t.Fatalf("expected component=db, got %#v", resp.Details["component"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "db is down" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, errors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if resp.Code != string(cmperrors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", cmperrors.ErrCodeInternal, resp.Code)
	}
	if !resp.Retryable {
		t.Fatalf("expected retryable=true")
	}
	if resp.Details == nil || resp.Details["x"].(string) != "y" {
		t.Fatalf("expected details to include x=y, got %#v", resp.Details)
	}
	if resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_InvalidFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
	w := httptest.NewRecorder()

	_, cause := semver.Parse("1.01.0")
	err := cmperrors.WrapWithContext(cmperrors.ErrCodeInvalidFormat, "invalid version for argument a", cause,
		map[string]any{"argument": "a", "value": "1.01.0", "reason": "leading zero in numeric identifier"})

	WriteErrorFromErr(w, req, err, "fallback", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("failed to unmarshal response: %v", uerr)
	}
	if resp.Code != string(cmperrors.ErrCodeInvalidFormat) {
		t.Fatalf("expected code %q, got %q", cmperrors.ErrCodeInvalidFormat, resp.Code)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
	for _, key := range []string{"argument", "value", "reason", "error"} {
		if _, ok := resp.Details[key]; !ok {
			t.Errorf("expected details key %q, got %#v", key, resp.Details)
		}
	}
	if resp.RequestID == "" {
		t.Error("expected generated request ID")
	}
}

func TestWriteErrorFromErr_WrappedStructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", nil)
	w := httptest.NewRecorder()

	inner := cmperrors.New(cmperrors.ErrCodeInvalidRequest, "too many versions")
	WriteErrorFromErr(w, req, fmt.Errorf("validate: %w", inner), "fallback", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Code != string(cmperrors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", cmperrors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "too many versions" {
		t.Fatalf("expected message from wrapped error, got %q", resp.Message)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false")
	}
}
