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
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	cmperrors "github.com/NVIDIA/semvercmp/pkg/errors"
	"github.com/NVIDIA/semvercmp/pkg/serializer"
)

// WriteError writes an ErrorResponse with the given status and code.
// The request ID is taken from the context, or generated when absent.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cmperrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err to an ErrorResponse. The status comes from the
// code of the first StructuredError in err's chain, which also supplies the
// message and context details; anything else is reported as INTERNAL with
// fallbackMessage. The cause text is added under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	code := cmperrors.CodeOf(err)
	status, retryable := HTTPStatusFromCode(code), retryableFromCode(code)

	var se *cmperrors.StructuredError
	if !errors.As(err, &se) {
		WriteError(w, r, status, code, fallbackMessage, retryable,
			mergeDetails(details, map[string]any{"error": err.Error()}))
		return
	}

	merged := mergeDetails(se.Context, details)
	if se.Cause != nil {
		merged = mergeDetails(merged, map[string]any{"error": se.Cause.Error()})
	}
	WriteError(w, r, status, code, se.Message, retryable, merged)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code cmperrors.ErrorCode) int {
	switch code {
	case cmperrors.ErrCodeInvalidRequest, cmperrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case cmperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cmperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cmperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cmperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cmperrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cmperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cmperrors.ErrorCode) bool {
	switch code {
	case cmperrors.ErrCodeTimeout, cmperrors.ErrCodeUnavailable,
		cmperrors.ErrCodeRateLimitExceeded, cmperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
