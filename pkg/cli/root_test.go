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

package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"compare", "validate", "version"}, names)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, name+" "+version)
	assert.Contains(t, out, "commit: "+commit)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{"default", nil, "", "info"},
		{"flag", []string{"--log-level", "warn"}, "", "warn"},
		{"env", nil, "error", "error"},
		{"debug wins", []string{"--log-level", "warn", "--debug"}, "", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("LOG_LEVEL", tt.env)
			}

			var got string
			cmd := &cli.Command{
				Flags: newRootCmd().Flags,
				Action: func(_ context.Context, c *cli.Command) error {
					got = logLevel(c)
					return nil
				},
			}

			require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, tt.args...)))
			assert.Equal(t, tt.want, got)
		})
	}
}
