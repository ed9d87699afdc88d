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

// Package cpufeat reports the half-precision support of the host CPU.
//
// The half package never uses these instructions; halfcalc prints them so a
// user can tell whether native code on the same machine would round the same
// way in hardware.
package cpufeat

import (
	"os"
	"runtime"
	"strconv"
)

// Level represents how much binary16 support the CPU offers.
type Level int

const (
	// LevelNone indicates no half-precision instructions.
	LevelNone Level = iota

	// LevelConvert indicates float16 <-> float32 conversion instructions only
	// (x86 F16C).
	LevelConvert

	// LevelArith indicates native half-precision arithmetic (ARM FPHP/ASIMDHP,
	// x86 AVX-512 FP16).
	LevelArith
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelConvert:
		return "convert"
	case LevelArith:
		return "arith"
	default:
		return "unknown"
	}
}

// Features lists the half-precision related CPU features.
type Features struct {
	Arch string

	// x86
	F16C       bool // float16 <-> float32 conversions (Haswell+)
	AVX512FP16 bool // native float16 arithmetic (Sapphire Rapids+)
	AVX512BF16 bool // bfloat16 dot products (Cooper Lake+)

	// arm64
	FPHP    bool // scalar half-precision arithmetic
	ASIMDHP bool // vector half-precision arithmetic
}

// detected is set by init() in cpufeat_*.go files.
var detected = Features{Arch: runtime.GOARCH}

// Detect returns the features found at startup. With HALF_NO_CPUFEAT set
// every feature reads as absent.
func Detect() Features {
	return detected
}

// Level summarises f.
func (f Features) Level() Level {
	switch {
	case f.AVX512FP16 || f.FPHP || f.ASIMDHP:
		return LevelArith
	case f.F16C:
		return LevelConvert
	}
	return LevelNone
}

// Names returns the names of the features present, in a fixed order.
func (f Features) Names() []string {
	var names []string
	for _, feat := range []struct {
		name string
		ok   bool
	}{
		{"f16c", f.F16C},
		{"avx512fp16", f.AVX512FP16},
		{"avx512bf16", f.AVX512BF16},
		{"fphp", f.FPHP},
		{"asimdhp", f.ASIMDHP},
	} {
		if feat.ok {
			names = append(names, feat.name)
		}
	}
	return names
}

// DisabledEnv checks if the HALF_NO_CPUFEAT environment variable is set.
// When set, detection is skipped and no features are reported.
func DisabledEnv() bool {
	val := os.Getenv("HALF_NO_CPUFEAT")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
