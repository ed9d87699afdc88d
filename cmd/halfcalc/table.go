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
	"github.com/ajroetker/go-half/internal/workerpool"
)

func tableCmd(opts *options) *cli.Command {
	var from, to string
	var step int

	return &cli.Command{
		Name:  "table",
		Usage: "List a range of bit patterns with their values",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "first bit pattern", Value: "0x3C00", Destination: &from},
			&cli.StringFlag{Name: "to", Usage: "last bit pattern (inclusive)", Value: "0x3C0F", Destination: &to},
			&cli.IntFlag{Name: "step", Usage: "distance between patterns", Value: 1, Destination: &step},
		},
		Before: opts.before,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pool := workerpool.New(opts.workers)
			defer pool.Close()
			recs, err := tableRecords(pool, from, to, step)
			if err != nil {
				return err
			}
			return writeRecords(outWriter(cmd), opts.format, recs)
		},
	}
}

// tableRecords builds one record per pattern in [from, to], step apart.
func tableRecords(pool *workerpool.Pool, from, to string, step int) ([]record, error) {
	lo, err := half.ParseBits(from)
	if err != nil {
		return nil, errors.Wrap(err, "--from")
	}
	hi, err := half.ParseBits(to)
	if err != nil {
		return nil, errors.Wrap(err, "--to")
	}
	if step < 1 {
		return nil, errors.Errorf("--step must be positive, got %d", step)
	}
	if lo > hi {
		return nil, errors.Errorf("--from 0x%04X is above --to 0x%04X", lo.Bits(), hi.Bits())
	}

	recs := make([]record, (int(hi)-int(lo))/step+1)
	pool.ParallelFor(len(recs), func(start, end int) {
		for i := start; i < end; i++ {
			recs[i] = newRecord("", half.FromBits(uint16(int(lo)+i*step)))
		}
	})
	return recs, nil
}
