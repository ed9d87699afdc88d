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

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/logger"
)

func convertCmd(opts *options) *cli.Command {
	var bits bool

	return &cli.Command{
		Name:      "convert",
		Usage:     "Round decimal values to half precision and show their encoding",
		ArgsUsage: "VALUE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "bits",
				Aliases:     []string{"b"},
				Usage:       "treat arguments as raw 16-bit patterns (0x3C00, 15360)",
				Destination: &bits,
			},
		},
		Before: opts.before,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return errors.New("convert: at least one value is required")
			}
			log := logger.FromContext(ctx)

			recs := make([]record, 0, len(args))
			for _, arg := range args {
				h, err := parseValue(arg, bits)
				if err != nil {
					return errors.Wrapf(err, "convert %q", arg)
				}
				log.WithField("input", arg).Debugf("parsed as 0x%04X", h.Bits())
				recs = append(recs, newRecord(arg, h))
			}
			return writeRecords(outWriter(cmd), opts.format, recs)
		},
	}
}

// parseValue parses arg as a decimal or hex float, or as a bit pattern when
// bits is set.
func parseValue(arg string, bits bool) (half.Float16, error) {
	if bits {
		return half.ParseBits(arg)
	}
	return half.Parse(arg)
}
