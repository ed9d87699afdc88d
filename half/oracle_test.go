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
	"math/big"
	"math/rand/v2"
	"testing"

	x448 "github.com/x448/float16"
)

// The reference results below come from float32 arithmetic followed by
// github.com/x448/float16's conversion. float32 carries more than twice the
// binary16 precision plus two bits, so rounding a +, -, *, / or sqrt result
// first to float32 and then to binary16 gives the correctly rounded binary16
// result. FMA does not have that property and is checked with math/big.

func refFromFloat32(f float32) Float16 {
	return Float16(x448.Fromfloat32(f).Bits())
}

func refToFloat32(h Float16) float32 {
	return x448.Frombits(uint16(h)).Float32()
}

// sameResult compares two results, treating any two NaNs as equal.
func sameResult(got, want Float16) bool {
	if want.IsNaN() {
		return got.IsNaN() && !got.IsSignaling()
	}
	return got == want
}

// edgeValues returns patterns around every interesting boundary, in both signs.
func edgeValues() []Float16 {
	base := []Float16{
		0x0000, 0x0001, 0x0002, 0x0003, 0x01FF, 0x0200, 0x03FE, 0x03FF,
		0x0400, 0x0401, 0x07FF, 0x0800, 0x1400, 0x2E66, 0x3555, 0x37FF,
		0x3800, 0x3801, 0x3BFF, 0x3C00, 0x3C01, 0x3DFF, 0x3E00, 0x3E01,
		0x4000, 0x4200, 0x4248, 0x4900, 0x5BFF, 0x63FF, 0x6400, 0x6401,
		0x7000, 0x7BFE, 0x7BFF, 0x7C00, 0x7C01, 0x7DFF, 0x7E00, 0x7FFF,
	}
	out := make([]Float16, 0, 2*len(base))
	for _, h := range base {
		out = append(out, h, h|0x8000)
	}
	return out
}

// randomPairs returns reproducible operand pairs: the edge values crossed
// with each other plus uniformly random patterns.
func randomPairs(n int) [][2]Float16 {
	edges := edgeValues()
	pairs := make([][2]Float16, 0, len(edges)*len(edges)+n)
	for _, a := range edges {
		for _, b := range edges {
			pairs = append(pairs, [2]Float16{a, b})
		}
	}
	rng := rand.New(rand.NewPCG(0x5eed, 0xf16))
	for range n {
		pairs = append(pairs, [2]Float16{Float16(rng.Uint32()), Float16(rng.Uint32())})
	}
	return pairs
}

// TestConversionMatchesReference checks both conversions bit-for-bit against
// the reference package over every pattern, and the narrowing conversion
// over values just around every binary16 rounding boundary.
func TestConversionMatchesReference(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		h := Float16(i)
		got, want := Float16ToFloat32(h), refToFloat32(h)
		if h.IsNaN() {
			if !math.IsNaN(float64(got)) {
				t.Fatalf("Float16ToFloat32(0x%04X): got %v, want NaN", i, got)
			}
			continue
		}
		if math.Float32bits(got) != math.Float32bits(want) {
			t.Fatalf("Float16ToFloat32(0x%04X): got 0x%08X, want 0x%08X", i, math.Float32bits(got), math.Float32bits(want))
		}

		// The midpoint to the next pattern, and its float32 neighbours.
		if h.IsInf() || h == MaxValue|h&signMask {
			continue
		}
		mid := (float64(got) + float64(Float16ToFloat32(h+1))) / 2
		for _, f := range []float32{
			float32(mid),
			math.Nextafter32(float32(mid), float32(math.Inf(-1))),
			math.Nextafter32(float32(mid), float32(math.Inf(1))),
		} {
			if g, w := Float32ToFloat16(f), refFromFloat32(f); g != w {
				t.Fatalf("Float32ToFloat16(%g): got 0x%04X, want 0x%04X", f, g, w)
			}
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 1 << 18 {
		f := math.Float32frombits(rng.Uint32())
		got, want := Float32ToFloat16(f), refFromFloat32(f)
		if !sameResult(got, want) {
			t.Fatalf("Float32ToFloat16(%g): got 0x%04X, want 0x%04X", f, got, want)
		}
	}
}

// TestArithmeticMatchesReference checks Add, Sub, Mul and Div bit-for-bit.
func TestArithmeticMatchesReference(t *testing.T) {
	ops := []struct {
		name string
		got  func(a, b Float16) Float16
		want func(a, b float32) float32
	}{
		{"Add", Float16.Add, func(a, b float32) float32 { return a + b }},
		{"Sub", Float16.Sub, func(a, b float32) float32 { return a - b }},
		{"Mul", Float16.Mul, func(a, b float32) float32 { return a * b }},
		{"Div", Float16.Div, func(a, b float32) float32 { return a / b }},
	}

	pairs := randomPairs(200000)
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			failures := 0
			for _, p := range pairs {
				a, b := p[0], p[1]
				got := op.got(a, b)
				want := refFromFloat32(op.want(refToFloat32(a), refToFloat32(b)))
				if !sameResult(got, want) {
					t.Errorf("%s(0x%04X, 0x%04X): got 0x%04X, want 0x%04X", op.name, a, b, got, want)
					if failures++; failures > 20 {
						t.FailNow()
					}
				}
			}
		})
	}
}

// TestSqrtMatchesReference checks Sqrt over every pattern.
func TestSqrtMatchesReference(t *testing.T) {
	for i := 0; i <= 0xFFFF; i++ {
		h := Float16(i)
		got := h.Sqrt()
		want := refFromFloat32(float32(math.Sqrt(float64(refToFloat32(h)))))
		if !sameResult(got, want) {
			t.Fatalf("Sqrt(0x%04X): got 0x%04X, want 0x%04X", i, got, want)
		}
	}
}

// exactValue returns h as an exact big.Float; h must be finite.
func exactValue(h Float16) *big.Float {
	return new(big.Float).SetPrec(0).SetFloat64(h.Float64())
}

// checkCorrectlyRounded verifies that got is the round-to-nearest-even
// binary16 value of the exact real x.
func checkCorrectlyRounded(t *testing.T, what string, x *big.Float, got Float16) {
	t.Helper()
	limit := big.NewFloat(65520) // MaxValue plus half an ULP
	if x.Sign() > 0 && x.Cmp(limit) >= 0 || x.Sign() < 0 && new(big.Float).Neg(x).Cmp(limit) >= 0 {
		want := Inf
		if x.Sign() < 0 {
			want = NegInf
		}
		if got != want {
			t.Errorf("%s: got 0x%04X, want 0x%04X (overflow)", what, got, want)
		}
		return
	}
	if !got.IsFinite() {
		t.Errorf("%s: got 0x%04X for finite exact result %s", what, got, x.Text('g', 20))
		return
	}
	if x.Sign() == 0 {
		if !got.IsZero() {
			t.Errorf("%s: got 0x%04X, want zero", what, got)
		}
		return
	}

	dist := func(h Float16) *big.Float {
		d := new(big.Float).SetPrec(200).Sub(x, exactValue(h))
		return d.Abs(d)
	}
	d := dist(got)
	for _, n := range []Float16{got.NextUp(), got.NextDown()} {
		if !n.IsFinite() {
			continue
		}
		switch dn := dist(n); d.Cmp(dn) {
		case 1:
			t.Errorf("%s: got 0x%04X, but 0x%04X is closer to %s", what, got, n, x.Text('g', 20))
		case 0:
			if got&1 != 0 {
				t.Errorf("%s: tie between 0x%04X and 0x%04X not rounded to even", what, got, n)
			}
		}
	}
}

// TestFMAIsCorrectlyRounded checks FMA against exact math/big results.
func TestFMAIsCorrectlyRounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	finite := func() Float16 {
		for {
			h := Float16(rng.Uint32())
			if h.IsFinite() {
				return h
			}
		}
	}
	edges := edgeValues()
	for i := range 100000 {
		var a, b, c Float16
		if i < len(edges)*len(edges) {
			a, b, c = edges[i%len(edges)], edges[i/len(edges)], finite()
		} else {
			a, b, c = finite(), finite(), finite()
		}
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		got := FMA(a, b, c)
		x := new(big.Float).SetPrec(200).Mul(exactValue(a), exactValue(b))
		x.Add(x, exactValue(c))
		checkCorrectlyRounded(t, "FMA", x, got)
		if t.Failed() {
			t.Fatalf("FMA(0x%04X, 0x%04X, 0x%04X) = 0x%04X", a, b, c, got)
		}
	}

	// 0x3C01 * 0x0FFF = 2^-11 + 2^-22 - 2^-32. Rounding that product on its
	// own gives 2^-11, and 1 + 2^-11 would then tie down to 1.
	if got := FMA(0x3C01, 0x0FFF, One); got != 0x3C01 {
		t.Errorf("FMA(0x3C01, 0x0FFF, 1): got 0x%04X, want 0x3C01", got)
	}
	if got := Float16(0x3C01).Mul(0x0FFF).Add(One); got != One {
		t.Errorf("Mul then Add: got 0x%04X, want 0x3C00", got)
	}
}

// FuzzArithmetic compares every binary operation with the reference.
func FuzzArithmetic(f *testing.F) {
	f.Add(uint16(0x3C00), uint16(0x4000))
	f.Add(uint16(0x7BFF), uint16(0x7BFF))
	f.Add(uint16(0x0001), uint16(0x8002))

	f.Fuzz(func(t *testing.T, a, b uint16) {
		fa, fb := Float16(a), Float16(b)
		xa, xb := refToFloat32(fa), refToFloat32(fb)
		checks := []struct {
			name      string
			got, want Float16
		}{
			{"Add", fa.Add(fb), refFromFloat32(xa + xb)},
			{"Sub", fa.Sub(fb), refFromFloat32(xa - xb)},
			{"Mul", fa.Mul(fb), refFromFloat32(xa * xb)},
			{"Div", fa.Div(fb), refFromFloat32(xa / xb)},
		}
		for _, c := range checks {
			if !sameResult(c.got, c.want) {
				t.Errorf("%s(0x%04X, 0x%04X): got 0x%04X, want 0x%04X", c.name, a, b, c.got, c.want)
			}
		}
	})
}
