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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestServer(limit rate.Limit, burst int) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware_Propagation(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"missing", "", false},
		{"valid uuid kept", provided, true},
		{"invalid replaced", "invalid-not-a-uuid", false},
	}

	s := newTestServer(100, 200)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			_, err := uuid.Parse(captured)
			require.NoError(t, err, "request ID %q", captured)
			assert.Equal(t, captured, rec.Header().Get("X-Request-Id"))
			if tt.wantSame {
				assert.Equal(t, tt.header, captured)
			} else {
				assert.NotEqual(t, tt.header, captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(100, 200)

	var captured any
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context().Value(contextKeyAPIVersion)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	req.Header.Set("Accept", "application/vnd.nvidia.semvercmp.v1+json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "v1", captured)
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s := newTestServer(100, 200)

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		assert.NotEmpty(t, rec.Header().Get(h), h)
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s := newTestServer(0, 0)

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

	assert.False(t, called, "handler should not be called when rate limited")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", resp.Code)
	assert.True(t, resp.Retryable)
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(100, 200)

	t.Run("recovers", func(t *testing.T) {
		handler := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INTERNAL", resp.Code)
	})

	t.Run("keeps written response", func(t *testing.T) {
		handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("late")
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("passes normal requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	s := newTestServer(100, 200)

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			handler := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))
			assert.Equal(t, status, rec.Code)
		})
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(100, 200)

	var requestID, apiVersion any
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Context().Value(contextKeyRequestID)
		apiVersion = r.Context().Value(contextKeyAPIVersion)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

	assert.NotNil(t, requestID)
	assert.NotNil(t, apiVersion)
	for _, h := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		assert.NotEmpty(t, rec.Header().Get(h), h)
	}
}
