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

import "math/bits"

// This file implements Float16 arithmetic directly on the bit patterns.
// Every operation:
// 1. Resolves NaN, infinity and zero operands per IEEE 754
// 2. Unpacks the operands into integer significands with an implicit bit
// 3. Computes an exact (or exact-plus-sticky) integer result
// 4. Rounds once to nearest even with roundPack
//
// The only NaN an operation creates is the canonical quiet NaN; NaN operands
// propagate with their quiet bit set.

// unpack returns the significand m of a finite nonzero h, normalized so its
// leading bit is bit 10, and an exponent e such that |h| = m * 2^(e-25).
// Denormals get e < 1.
func unpack(h Float16) (m uint32, e int) {
	e = int(h.ExponentBits())
	m = uint32(h.SignificandBits())
	if e == 0 {
		shift := mantissaBits + 1 - bits.Len32(m)
		return m << uint(shift), 1 - shift
	}
	return m | 1<<mantissaBits, e
}

// roundPack rounds (sig + f) * 2^exp2 to the nearest Float16, ties to even,
// where 0 <= f < 1 and f > 0 exactly when sticky is set. The caller must keep
// at least two bits below the final rounding position whenever sticky is set.
func roundPack(sign Float16, sig uint64, exp2 int, sticky bool) Float16 {
	if sig == 0 {
		return sign
	}
	n := bits.Len64(sig)
	top := exp2 + n - 1
	if top > MaxExponent {
		return sign | Inf
	}

	// Weight of the result's last significand bit.
	lsb := top - mantissaBits
	if lsb < MinExponent-mantissaBits {
		lsb = MinExponent - mantissaBits
	}

	var q uint64
	switch shift := lsb - exp2; {
	case shift <= 0:
		q = sig << uint(-shift)
	case shift > n:
		// Less than half of the smallest denormal.
		q = 0
	default:
		q = sig >> uint(shift)
		rem := sig & (1<<uint(shift) - 1)
		halfway := uint64(1) << uint(shift-1)
		if rem > halfway || rem == halfway && (sticky || q&1 != 0) {
			q++
		}
	}

	var r uint64
	if top < MinExponent {
		// Denormal; a carry to 0x400 is exactly MinNormal.
		r = q
	} else {
		// q includes the implicit bit, so a carry out of the significand
		// moves into the exponent.
		r = uint64(top+expBias-1)<<mantissaBits + q
	}
	if r >= expField {
		return sign | Inf
	}
	return sign | Float16(r)
}

// Neg returns -h by flipping the sign bit. NaNs are not quieted.
func (h Float16) Neg() Float16 {
	return h ^ signMask
}

// Abs returns |h| by clearing the sign bit.
func (h Float16) Abs() Float16 {
	return h &^ signMask
}

// CopySign returns a value with the magnitude of h and the sign of sign.
func (h Float16) CopySign(sign Float16) Float16 {
	return h&absMask | sign&signMask
}

// Add returns a + b.
//
// Special cases are:
//
//	Add(NaN, x) = Add(x, NaN) = NaN
//	Add(+Inf, -Inf) = NaN
//	Add(±Inf, x) = ±Inf for finite x
//	Add(+0, -0) = +0
//	Add(-0, -0) = -0
//	Add(x, -x) = +0
func (a Float16) Add(b Float16) Float16 {
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case a.IsInf():
		if b.IsInf() && a != b {
			return NaN
		}
		return a
	case b.IsInf():
		return b
	case a.IsZero():
		if b.IsZero() {
			// -0 only when both are -0.
			return a & b
		}
		return b
	case b.IsZero():
		return a
	}

	sa, sb := a&signMask, b&signMask
	ma, ea := unpack(a)
	mb, eb := unpack(b)
	if ea < eb || ea == eb && ma < mb {
		ma, mb = mb, ma
		ea, eb = eb, ea
		sa, sb = sb, sa
	}

	// Three extra low bits: guard, round and sticky.
	xa := uint64(ma) << 3
	xb := uint64(mb) << 3
	if d := uint(ea - eb); d > 0 {
		if d > 14 {
			// Everything shifts out; only the sticky bit remains.
			xb = 1
		} else {
			lost := xb & (1<<d - 1)
			xb >>= d
			if lost != 0 {
				xb |= 1
			}
		}
	}

	var sum uint64
	if sa == sb {
		sum = xa + xb
	} else {
		sum = xa - xb
	}
	if sum == 0 {
		return Zero
	}
	return roundPack(sa, sum, ea-mantissaBits-expBias-3, false)
}

// Sub returns a - b, computed as a + (-b).
func (a Float16) Sub(b Float16) Float16 {
	return a.Add(b.Neg())
}

// Inc returns h + 1.
func (h Float16) Inc() Float16 {
	return h.Add(One)
}

// Dec returns h - 1.
func (h Float16) Dec() Float16 {
	return h.Sub(One)
}

// Mul returns a * b.
//
// Special cases are:
//
//	Mul(NaN, x) = Mul(x, NaN) = NaN
//	Mul(±0, ±Inf) = Mul(±Inf, ±0) = NaN
//	Mul(±Inf, x) = ±Inf for nonzero x
//	Mul(±0, x) = ±0 for finite x
func (a Float16) Mul(b Float16) Float16 {
	sign := (a ^ b) & signMask
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case a.IsInf():
		if b.IsZero() {
			return NaN
		}
		return sign | Inf
	case b.IsInf():
		if a.IsZero() {
			return NaN
		}
		return sign | Inf
	case a.IsZero() || b.IsZero():
		return sign
	}

	ma, ea := unpack(a)
	mb, eb := unpack(b)
	// 11-bit by 11-bit significands: the product fits in 22 bits.
	p := ma * mb
	return roundPack(sign, uint64(p), ea+eb-2*(mantissaBits+expBias), false)
}

// Div returns a / b.
//
// Special cases are:
//
//	Div(NaN, x) = Div(x, NaN) = NaN
//	Div(±0, ±0) = Div(±Inf, ±Inf) = NaN
//	Div(x, ±0) = ±Inf for nonzero x
//	Div(±0, x) = Div(x, ±Inf) = ±0 for finite x
func (a Float16) Div(b Float16) Float16 {
	sign := (a ^ b) & signMask
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case a.IsInf():
		if b.IsInf() {
			return NaN
		}
		return sign | Inf
	case b.IsInf():
		return sign
	case b.IsZero():
		if a.IsZero() {
			return NaN
		}
		return sign | Inf
	case a.IsZero():
		return sign
	}

	ma, ea := unpack(a)
	mb, eb := unpack(b)
	// Pre-shift the dividend so the quotient has at least 16 significant
	// bits; the remainder only matters as a sticky bit.
	const pre = 16
	n := uint64(ma) << pre
	q, r := n/uint64(mb), n%uint64(mb)
	return roundPack(sign, q, ea-eb-pre, r != 0)
}

// Sqrt returns the square root of h.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func (h Float16) Sqrt() Float16 {
	switch {
	case h.IsNaN():
		return h | quietBit
	case h.IsZero():
		return h
	case h.IsNegative():
		return NaN
	case h.IsInf():
		return h
	}

	m, e := unpack(h)
	exp2 := e - mantissaBits - expBias
	sig := uint64(m)
	if exp2&1 != 0 {
		// odd exponent, double the significand to make it even
		sig <<= 1
		exp2--
	}
	// An even pre-shift keeps the exponent even and leaves the root with
	// 16 significant bits.
	const pre = 20
	root, rem := isqrt(sig << pre)
	return roundPack(0, root, (exp2-pre)/2, rem != 0)
}

// isqrt returns floor(sqrt(v)) and the remainder v - root*root, generating
// the root one binary digit at a time.
func isqrt(v uint64) (root, rem uint64) {
	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= root+bit {
			v -= root + bit
			root = root>>1 + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}
	return root, v
}

// FMA returns a*b + c computed with a single rounding.
func FMA(a, b, c Float16) Float16 {
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case c.IsNaN():
		return c | quietBit
	}

	sign := (a ^ b) & signMask
	if a.IsInf() || b.IsInf() {
		if a.IsZero() || b.IsZero() {
			return NaN
		}
		if c.IsInf() && c&signMask != sign {
			return NaN
		}
		return sign | Inf
	}
	switch {
	case c.IsInf():
		return c
	case a.IsZero() || b.IsZero():
		// The exact product is a signed zero.
		return sign.Add(c)
	case c.IsZero():
		return a.Mul(b)
	}

	ma, ea := unpack(a)
	mb, eb := unpack(b)
	mc, ec := unpack(c)
	return addWide(
		sign, uint64(ma)*uint64(mb), ea+eb-2*(mantissaBits+expBias),
		c&signMask, uint64(mc), ec-mantissaBits-expBias)
}

// addWide returns the rounded sum of x = mx * 2^ex and y = my * 2^ey, both
// nonzero with the given signs. Both significands are widened so their
// leading bit is bit 40, leaving at least 18 zero bits below the larger
// operand for guard and sticky information.
func addWide(sx Float16, mx uint64, ex int, sy Float16, my uint64, ey int) Float16 {
	const width = 41
	sh := width - bits.Len64(mx)
	mx, ex = mx<<uint(sh), ex-sh
	sh = width - bits.Len64(my)
	my, ey = my<<uint(sh), ey-sh

	if ey > ex || ey == ex && my > mx {
		mx, my = my, mx
		ex, ey = ey, ex
		sx, sy = sy, sx
	}
	if d := uint(ex - ey); d > 0 {
		if d > width {
			my = 1
		} else {
			lost := my & (1<<d - 1)
			my >>= d
			if lost != 0 {
				my |= 1
			}
		}
	}

	var sum uint64
	if sx == sy {
		sum = mx + my
	} else {
		sum = mx - my
	}
	if sum == 0 {
		return Zero
	}
	return roundPack(sx, sum, ex, false)
}

// Min returns the smaller of a and b, treating -0 as less than +0.
// If either is NaN the result is NaN.
func Min(a, b Float16) Float16 {
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case Compare(a, b) <= 0:
		return a
	}
	return b
}

// Max returns the larger of a and b, treating -0 as less than +0.
// If either is NaN the result is NaN.
func Max(a, b Float16) Float16 {
	switch {
	case a.IsNaN():
		return a | quietBit
	case b.IsNaN():
		return b | quietBit
	case Compare(a, b) >= 0:
		return a
	}
	return b
}
