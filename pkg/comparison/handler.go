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
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NVIDIA/semvercmp/pkg/defaults"
	cmperrors "github.com/NVIDIA/semvercmp/pkg/errors"
	"github.com/NVIDIA/semvercmp/pkg/serializer"
	"github.com/NVIDIA/semvercmp/pkg/server"
)

var allowedMethods = []string{http.MethodGet, http.MethodPost}

// HandleCompare compares two versions supplied either as GET query
// parameters (?a=1.0.0&b=2.0.0) or as a JSON/YAML POST body ({a, b}).
// The response is a Comparison document.
func (s *Service) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.CompareHandlerTimeout)
	defer cancel()

	var req CompareRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = compareRequestFromQuery(r)
	case http.MethodPost:
		err = decodeBody(r, &req)
	default:
		writeMethodNotAllowed(w, r)
		return
	}

	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmperrors.ErrCodeInvalidRequest,
			"Invalid comparison request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	result, err := s.Compare(ctx, req.A, req.B)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compare versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleValidate validates versions supplied either as repeated GET query
// parameters (?version=1.0.0&version=2.0) or as a JSON/YAML POST body
// ({versions: [...]}). Invalid versions are reported per entry with a 200.
func (s *Service) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	var list VersionList
	var err error

	switch r.Method {
	case http.MethodGet:
		list.Versions = r.URL.Query()["version"]
	case http.MethodPost:
		err = decodeBody(r, &list)
	default:
		writeMethodNotAllowed(w, r)
		return
	}

	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cmperrors.ErrCodeInvalidRequest,
			"Invalid validation request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	result, err := s.Validate(ctx, list.Versions)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to validate versions", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, cmperrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowedMethods,
		})
}

// compareRequestFromQuery reads a and b from the query string. Values are
// taken verbatim; an absent parameter is an error but an empty one is passed
// on so the parser can reject it.
func compareRequestFromQuery(r *http.Request) (CompareRequest, error) {
	q := r.URL.Query()
	for _, name := range []string{ArgumentA, ArgumentB} {
		if !q.Has(name) {
			return CompareRequest{}, fmt.Errorf("missing query parameter %q", name)
		}
	}
	return CompareRequest{A: q.Get(ArgumentA), B: q.Get(ArgumentB)}, nil
}

// decodeBody decodes a JSON or YAML request body into v based on Content-Type.
// Unrecognized content types are decoded as JSON.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("request body cannot be nil")
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			slog.Debug("failed to close request body", "error", err)
		}
	}()

	reader, err := serializer.NewReader(formatFromContentType(r.Header.Get("Content-Type")),
		io.LimitReader(r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		return err
	}
	if err := reader.Deserialize(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return err
	}
	return nil
}

func formatFromContentType(contentType string) serializer.Format {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		return serializer.FormatYAML
	default:
		return serializer.FormatJSON
	}
}
