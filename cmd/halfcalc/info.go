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
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/cpufeat"
)

// constantTable lists the named constants in display order.
var constantTable = []struct {
	name  string
	value half.Float16
}{
	{"MaxValue", half.MaxValue},
	{"LowestValue", half.LowestValue},
	{"MinNormal", half.MinNormal},
	{"MinValue", half.MinValue},
	{"Epsilon", half.Epsilon},
	{"One", half.One},
	{"Inf", half.Inf},
	{"NegInf", half.NegInf},
	{"NaN", half.NaN},
}

func infoCmd(opts *options) *cli.Command {
	return &cli.Command{
		Name:   "info",
		Usage:  "Print the format constants and the host's half-precision support",
		Before: opts.before,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := outWriter(cmd)
			if opts.format != formatText {
				recs := make([]record, 0, len(constantTable))
				for _, c := range constantTable {
					recs = append(recs, newRecord(c.name, c.value))
				}
				return writeRecords(w, opts.format, recs)
			}

			p := message.NewPrinter(language.English)
			feats := cpufeat.Detect()
			names := strings.Join(feats.Names(), " ")
			if names == "" {
				names = "-"
			}
			if _, err := p.Fprintf(w, "binary16: %d bits, exponent %d..%d, max %v\n",
				half.Size, half.MinExponent, half.MaxExponent, half.MaxValue.Float32()); err != nil {
				return errors.Wrap(err, "writing output")
			}
			if _, err := p.Fprintf(w, "cpu: %s, support %s, features %s\n", feats.Arch, feats.Level(), names); err != nil {
				return errors.Wrap(err, "writing output")
			}
			for _, c := range constantTable {
				if _, err := p.Fprintf(w, "%-12s %-12v 0x%04X  %s\n", c.name, c.value, c.value.Bits(), c.value.HexString()); err != nil {
					return errors.Wrap(err, "writing output")
				}
			}
			return nil
		},
	}
}
