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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRecordsResult(t *testing.T) {
	before := testutil.ToFloat64(comparisonsTotal.WithLabelValues("greater"))

	_, err := New().Compare(context.Background(), "1.0.1", "1.0.0")
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(comparisonsTotal.WithLabelValues("greater")))
}

func TestValidateRecordsOutcomes(t *testing.T) {
	valid := testutil.ToFloat64(validationsTotal.WithLabelValues("valid"))
	invalid := testutil.ToFloat64(validationsTotal.WithLabelValues("invalid"))
	overflow := testutil.ToFloat64(invalidVersionsTotal.WithLabelValues("version number overflows uint64"))

	_, err := New().Validate(context.Background(), []string{"1.0.0", "18446744073709551616.0.0"})
	require.NoError(t, err)

	assert.Equal(t, valid+1, testutil.ToFloat64(validationsTotal.WithLabelValues("valid")))
	assert.Equal(t, invalid+1, testutil.ToFloat64(validationsTotal.WithLabelValues("invalid")))
	assert.Equal(t, overflow+1, testutil.ToFloat64(invalidVersionsTotal.WithLabelValues("version number overflows uint64")))
}
