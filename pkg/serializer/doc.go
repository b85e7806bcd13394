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

// Package serializer encodes documents for the CLI and the API server and
// decodes version lists supplied by users.
//
// # Formats
//
//   - text: the value's String form on one line (the default for compare)
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//   - table: flattened FIELD/VALUE table; write-only
//   - toml: read-only, via github.com/BurntSushi/toml
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # Reading
//
// FromFile detects JSON, YAML or TOML from the path extension and accepts local
// paths as well as http(s) URLs:
//
//	list, err := serializer.FromFile[VersionList](ctx, "versions.yaml")
//
// # HTTP
//
// RespondJSON buffers the encoded body so an encoding failure results in a
// clean 500 instead of a partial response:
//
//	serializer.RespondJSON(w, http.StatusOK, comparison)
package serializer
