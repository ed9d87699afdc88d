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

package half

import (
	"math"
	"testing"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name                                          string
		h                                             Float16
		nan, inf, finite, zero, normal, denormal, neg bool
	}{
		{"+0", Zero, false, false, true, true, false, false, false},
		{"-0", NegZero, false, false, true, true, false, false, true},
		{"1", One, false, false, true, false, true, false, false},
		{"-1", NegOne, false, false, true, false, true, false, true},
		{"MinValue", MinValue, false, false, true, false, false, true, false},
		{"-MaxDenormal", 0x83FF, false, false, true, false, false, true, true},
		{"MinNormal", MinNormal, false, false, true, false, true, false, false},
		{"MaxValue", MaxValue, false, false, true, false, true, false, false},
		{"+Inf", Inf, false, true, false, false, false, false, false},
		{"-Inf", NegInf, false, true, false, false, false, false, true},
		{"NaN", NaN, true, false, false, false, false, false, false},
		{"-sNaN", 0xFC01, true, false, false, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.IsNaN(); got != tt.nan {
				t.Errorf("IsNaN: got %v", got)
			}
			if got := tt.h.IsInf(); got != tt.inf {
				t.Errorf("IsInf: got %v", got)
			}
			if got := tt.h.IsFinite(); got != tt.finite {
				t.Errorf("IsFinite: got %v", got)
			}
			if got := tt.h.IsZero(); got != tt.zero {
				t.Errorf("IsZero: got %v", got)
			}
			if got := tt.h.IsNormalized(); got != tt.normal {
				t.Errorf("IsNormalized: got %v", got)
			}
			if got := tt.h.IsDenormal(); got != tt.denormal {
				t.Errorf("IsDenormal: got %v", got)
			}
			if got := tt.h.IsNegative(); got != tt.neg {
				t.Errorf("IsNegative: got %v", got)
			}
		})
	}
}

// TestClassificationMatchesFloat32 checks the predicates on every pattern
// against the widened value.
func TestClassificationMatchesFloat32(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		h := Float16(i)
		f := float64(h.Float32())
		if h.IsNaN() != math.IsNaN(f) {
			t.Fatalf("IsNaN(0x%04X) = %v", i, h.IsNaN())
		}
		if h.IsInf() != math.IsInf(f, 0) || h.IsInfSign(1) != math.IsInf(f, 1) || h.IsInfSign(-1) != math.IsInf(f, -1) {
			t.Fatalf("IsInf(0x%04X) disagrees with math.IsInf", i)
		}
		if h.IsZero() != (f == 0) {
			t.Fatalf("IsZero(0x%04X) = %v", i, h.IsZero())
		}
		if h.IsNegative() != math.Signbit(f) {
			t.Fatalf("IsNegative(0x%04X) = %v", i, h.IsNegative())
		}
		// Exactly one class applies to every pattern.
		classes := 0
		for _, c := range []bool{h.IsNaN(), h.IsInf(), h.IsZero(), h.IsNormalized(), h.IsDenormal()} {
			if c {
				classes++
			}
		}
		if classes != 1 {
			t.Fatalf("0x%04X falls in %d classes", i, classes)
		}
	}
}

func TestSignalingNaN(t *testing.T) {
	for _, h := range []Float16{0x7C01, 0x7DFF, 0xFC01} {
		if !h.IsSignaling() {
			t.Errorf("IsSignaling(0x%04X): got false", h)
		}
	}
	for _, h := range []Float16{NaN, 0x7FFF, 0xFE00, Inf, One} {
		if h.IsSignaling() {
			t.Errorf("IsSignaling(0x%04X): got true", h)
		}
	}
}

func TestSignum(t *testing.T) {
	tests := []struct {
		in, want Float16
	}{
		{New(42), One},
		{New(-0.001), NegOne},
		{MinValue, One},
		{0x8001, NegOne},
		{Inf, One},
		{NegInf, NegOne},
		{Zero, Zero},
		{NegZero, Zero},
		{NaN, NaN},
		{0xFC01, 0xFE01},
	}
	for _, tt := range tests {
		if got := tt.in.Signum(); got != tt.want {
			t.Errorf("Signum(0x%04X): got 0x%04X, want 0x%04X", tt.in, got, tt.want)
		}
	}
}

func TestIsInfSign(t *testing.T) {
	if !Inf.IsInfSign(0) || !NegInf.IsInfSign(0) {
		t.Error("IsInfSign(0) should accept both infinities")
	}
	if Inf.IsInfSign(-1) || NegInf.IsInfSign(1) {
		t.Error("IsInfSign should reject the opposite sign")
	}
	if MaxValue.IsInfSign(0) || NaN.IsInfSign(0) {
		t.Error("IsInfSign should reject non-infinities")
	}
}
