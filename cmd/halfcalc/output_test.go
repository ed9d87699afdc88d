// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/workerpool"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   half.Float16
		want string
	}{
		{half.Zero, "+zero"},
		{half.NegZero, "-zero"},
		{half.One, "+normal"},
		{half.LowestValue, "-normal"},
		{half.MinValue, "+denormal"},
		{0x83FF, "-denormal"},
		{half.Inf, "+inf"},
		{half.NegInf, "-inf"},
		{half.NaN, "+qnan"},
		{0xFE00, "-qnan"},
		{0x7C01, "+snan"},
	}
	for _, tt := range tests {
		if got := classify(tt.in); got != tt.want {
			t.Errorf("classify(0x%04X): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRecord(t *testing.T) {
	two := int32(2)
	want := record{Input: "1.5", Value: "1.5", Bits: "0x3E00", Hex: "0x1.8p0", Class: "+normal", Rounded: &two}
	if diff := cmp.Diff(want, newRecord("1.5", half.New(1.5))); diff != "" {
		t.Errorf("newRecord mismatch (-want +got):\n%s", diff)
	}

	r := newRecord("", half.Inf)
	require.NotNil(t, r.Rounded)
	assert.Equal(t, int32(math.MaxInt32), *r.Rounded)

	assert.Nil(t, newRecord("", half.NaN).Rounded)
}

func TestWriteRecords(t *testing.T) {
	recs := []record{newRecord("", half.One), newRecord("", half.NaN)}

	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, formatJSON, recs))
	assert.JSONEq(t, `[
		{"value": "1", "bits": "0x3C00", "hex": "0x1.0p0", "class": "+normal", "rounded": 1},
		{"value": "NaN", "bits": "0x7E00", "hex": "NaN", "class": "+qnan"}
	]`, buf.String())

	buf.Reset()
	require.NoError(t, writeRecords(&buf, formatYAML, recs))
	assert.Contains(t, buf.String(), "value: NaN")
	assert.Contains(t, buf.String(), "rounded: 1")
	assert.Equal(t, 1, strings.Count(buf.String(), "rounded:"))

	buf.Reset()
	require.NoError(t, writeRecords(&buf, formatText, recs))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"1", "0x3C00", "0x1.0p0", "+normal"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"NaN", "0x7E00", "NaN", "+qnan"}, strings.Fields(lines[1]))
}

func TestTableRecords(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	recs, err := tableRecords(pool, "0x0000", "0x0003", 1)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "+zero", recs[0].Class)
	assert.Equal(t, "0x0003", recs[3].Bits)

	recs, err = tableRecords(pool, "0x3C00", "0x4000", 0x100)
	require.NoError(t, err)
	got := make([]string, len(recs))
	for i, r := range recs {
		got[i] = r.Value
	}
	assert.Equal(t, []string{"1", "1.25", "1.5", "1.75", "2"}, got)

	// Every pattern, in order.
	recs, err = tableRecords(pool, "0x0000", "0xFFFF", 1)
	require.NoError(t, err)
	require.Len(t, recs, 1<<16)
	assert.Equal(t, "0x7BFF", recs[0x7BFF].Bits)
	assert.Equal(t, "-inf", recs[0xFC00].Class)

	for _, bad := range [][3]any{
		{"0x4000", "0x3C00", 1},
		{"0x0", "0x10", 0},
		{"zero", "0x10", 1},
		{"0x0", "0x10000", 1},
	} {
		_, err := tableRecords(pool, bad[0].(string), bad[1].(string), bad[2].(int))
		assert.Error(t, err, "tableRecords(%v)", bad)
	}
}
