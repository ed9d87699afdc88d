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

	"github.com/ajroetker/go-half/half"
	"github.com/ajroetker/go-half/internal/logger"
)

var unaryOps = map[string]func(half.Float16) half.Float16{
	"neg":        half.Float16.Neg,
	"abs":        half.Float16.Abs,
	"sqrt":       half.Float16.Sqrt,
	"inc":        half.Float16.Inc,
	"dec":        half.Float16.Dec,
	"round":      half.Float16.Round,
	"round-even": half.Float16.RoundToEven,
	"floor":      half.Float16.Floor,
	"ceil":       half.Float16.Ceil,
	"trunc":      half.Float16.Trunc,
	"ulp":        half.Float16.Ulp,
	"next-up":    half.Float16.NextUp,
	"next-down":  half.Float16.NextDown,
	"signum":     half.Float16.Signum,
}

var binaryOps = map[string]func(a, b half.Float16) half.Float16{
	"+":           half.Float16.Add,
	"-":           half.Float16.Sub,
	"*":           half.Float16.Mul,
	"x":           half.Float16.Mul,
	"/":           half.Float16.Div,
	"min":         half.Min,
	"max":         half.Max,
	"copysign":    half.Float16.CopySign,
	"next-toward": half.Float16.NextTowards,
}

func evalCmd(opts *options) *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "Evaluate one operation in half precision",
		ArgsUsage: "A OP B | OP A | fma A B C\n\n" +
			"   binary: + - * x / min max copysign next-toward\n" +
			"   unary:  neg abs sqrt inc dec round round-even floor ceil trunc ulp next-up next-down signum",
		Before: opts.before,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			h, err := evalExpr(args)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).WithField("expr", strings.Join(args, " ")).Debugf("result 0x%04X", h.Bits())
			return writeRecords(outWriter(cmd), opts.format, []record{newRecord("", h)})
		},
	}
}

// evalExpr evaluates "A OP B", "OP A" or "fma A B C". Operands are decimals,
// hex floats or 0x bit patterns.
func evalExpr(args []string) (half.Float16, error) {
	switch {
	case len(args) == 2:
		op, ok := unaryOps[strings.ToLower(args[0])]
		if !ok {
			return 0, errors.Errorf("unknown unary operation %q", args[0])
		}
		a, err := operand(args[1])
		if err != nil {
			return 0, err
		}
		return op(a), nil

	case len(args) == 3:
		op, ok := binaryOps[strings.ToLower(args[1])]
		if !ok {
			return 0, errors.Errorf("unknown binary operation %q", args[1])
		}
		a, err := operand(args[0])
		if err != nil {
			return 0, err
		}
		b, err := operand(args[2])
		if err != nil {
			return 0, err
		}
		return op(a, b), nil

	case len(args) == 4 && strings.EqualFold(args[0], "fma"):
		var v [3]half.Float16
		for i, arg := range args[1:] {
			h, err := operand(arg)
			if err != nil {
				return 0, err
			}
			v[i] = h
		}
		return half.FMA(v[0], v[1], v[2]), nil
	}
	return 0, errors.Errorf("cannot evaluate %q: want A OP B, OP A or fma A B C", strings.Join(args, " "))
}

// operand parses one argument the way UnmarshalText does.
func operand(arg string) (half.Float16, error) {
	var h half.Float16
	if err := h.UnmarshalText([]byte(arg)); err != nil {
		return 0, errors.Wrapf(err, "operand %q", arg)
	}
	return h, nil
}
