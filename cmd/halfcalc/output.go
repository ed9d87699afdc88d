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
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-half/half"
)

// record describes one value in every output format.
type record struct {
	Input   string `json:"input,omitempty" yaml:"input,omitempty"`
	Value   string `json:"value" yaml:"value"`
	Bits    string `json:"bits" yaml:"bits"`
	Hex     string `json:"hex" yaml:"hex"`
	Class   string `json:"class" yaml:"class"`
	Rounded *int32 `json:"rounded,omitempty" yaml:"rounded,omitempty"`
}

func newRecord(input string, h half.Float16) record {
	r := record{
		Input: input,
		Value: h.String(),
		Bits:  fmt.Sprintf("0x%04X", h.Bits()),
		Hex:   h.HexString(),
		Class: classify(h),
	}
	// NaN has no integer value; leave the field out.
	if i, err := h.RoundToInt(); err == nil {
		r.Rounded = &i
	}
	return r
}

// classify names the IEEE class of h, with a sign prefix.
func classify(h half.Float16) string {
	sign := "+"
	if h.IsNegative() {
		sign = "-"
	}
	switch {
	case h.IsNaN():
		if h.IsSignaling() {
			return sign + "snan"
		}
		return sign + "qnan"
	case h.IsInf():
		return sign + "inf"
	case h.IsZero():
		return sign + "zero"
	case h.IsDenormal():
		return sign + "denormal"
	}
	return sign + "normal"
}

// writeRecords prints recs to w in the given format.
func writeRecords(w io.Writer, format string, recs []record) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(recs), "encoding json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	}

	for _, r := range recs {
		var err error
		if r.Input != "" {
			_, err = fmt.Fprintf(w, "%-12s %-12s %s  %-14s %s\n", r.Input, r.Value, r.Bits, r.Hex, r.Class)
		} else {
			_, err = fmt.Fprintf(w, "%-12s %s  %-14s %s\n", r.Value, r.Bits, r.Hex, r.Class)
		}
		if err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}
