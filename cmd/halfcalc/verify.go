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
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/logger"
	"github.com/ajroetker/go-half/internal/workerpool"
)

// batchSize is the number of patterns a worker checks per batch.
const batchSize = 1024

// patterns is the number of distinct Float16 values.
const patterns = 1 << half.Size

// check is one invariant tested on every bit pattern.
type check struct {
	name string
	ok   func(h half.Float16) bool
}

var checks = []check{
	{"round trip", func(h half.Float16) bool {
		return h.IsNaN() || half.Float32ToFloat16(half.Float16ToFloat32(h)) == h
	}},
	{"nan stays nan", func(h half.Float16) bool {
		return !h.IsNaN() || half.Float32ToFloat16(half.Float16ToFloat32(h)).IsNaN()
	}},
	{"one class", func(h half.Float16) bool {
		n := 0
		for _, c := range []bool{h.IsNaN(), h.IsInf(), h.IsZero(), h.IsNormalized(), h.IsDenormal()} {
			if c {
				n++
			}
		}
		return n == 1
	}},
	{"signum of negation", func(h half.Float16) bool {
		return h.IsNaN() || h.Neg().Signum() == h.Signum().Neg() || h.IsZero()
	}},
	{"next up is greater", func(h half.Float16) bool {
		return h.IsNaN() || h == half.Inf || half.Compare(h, h.NextUp()) < 0
	}},
	{"x + -x is +0", func(h half.Float16) bool {
		return !h.IsFinite() || h.Add(h.Neg()) == half.Zero
	}},
	{"x * 1 is x", func(h half.Float16) bool {
		return h.IsNaN() || h.Mul(half.One) == h
	}},
	{"x / x is 1", func(h half.Float16) bool {
		return !h.IsFinite() || h.IsZero() || h.Div(h) == half.One
	}},
	{"nan propagates", func(h half.Float16) bool {
		return h.Add(half.NaN).IsNaN() && half.NaN.Mul(h).IsNaN() && h.Div(half.NaN).IsNaN()
	}},
}

func verifyCmd(opts *options) *cli.Command {
	return &cli.Command{
		Name:   "verify",
		Usage:  "Check arithmetic and conversion invariants over all 65536 patterns",
		Before: opts.before,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pool := workerpool.New(opts.workers)
			defer pool.Close()

			start := time.Now()
			n, err := verifyAll(ctx, pool)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).WithField("elapsed", time.Since(start)).Info("verify finished")

			p := message.NewPrinter(language.English)
			_, err = p.Fprintf(outWriter(cmd), "ok: %d checks on %d patterns (%d workers)\n",
				len(checks), n, opts.workers)
			return errors.Wrap(err, "writing output")
		},
	}
}

// verifyAll runs every check on every pattern, in batches spread over the
// pool. The first failure stops the remaining batches.
func verifyAll(ctx context.Context, pool *workerpool.Pool) (int, error) {
	log := logger.FromContext(ctx)
	err := pool.Batches(ctx, patterns, batchSize, func(lo, hi int) error {
		for b := lo; b < hi; b++ {
			h := half.FromBits(uint16(b))
			for _, c := range checks {
				if !c.ok(h) {
					return errors.Errorf("%s fails for 0x%04X (%v)", c.name, b, h)
				}
			}
		}
		log.WithField("batch", [2]int{lo, hi}).Debug("batch done")
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "verify")
	}
	return patterns, nil
}
