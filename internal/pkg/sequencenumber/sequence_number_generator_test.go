// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateWith(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 30, 15, 0, time.UTC)
	sng := NewGeneratorWith(func() time.Time { return now }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name    string
		input   int64
		wantSN  string
		wantErr bool
	}{
		{
			name:   "门店ID只有一位",
			input:  1,
			wantSN: "202405010830150001nUfojc",
		},
		{
			name:   "门店ID超过四位取后四位",
			input:  123456789,
			wantSN: "202405010830156789nUfojc",
		},
		{
			name:   "后四位全为0",
			input:  10000,
			wantSN: "202405010830150000nUfojc",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSN, sn)
			assert.Len(t, sn, Length)
		})
	}
}

func TestGenerator_Generate(t *testing.T) {
	sn, err := NewGenerator().Generate(123456789)
	require.NoError(t, err)
	assert.Contains(t, sn, "6789")
	assert.Len(t, sn, Length)

	_, err = NewGeneratorWith(time.Now, func() string { return "abc" }).Generate(1)
	assert.Error(t, err)
}
