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

// Package half implements IEEE 754 half-precision (binary16) floating-point
// numbers in software.
//
// All conversions and arithmetic are done with integer bit manipulation and
// round to nearest, ties to even. No operation panics: domain errors produce
// the IEEE special values (NaN, ±Inf, signed zero), exactly as hardware would.
package half

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Total bits: 16
//   - Exponent bits: 5 (bias: 15)
//   - Mantissa bits: 10
//   - Max value: 65504
//   - Min positive normal: ~6.10e-5
//   - Precision: ~3.3 decimal digits
//
// Every 16-bit pattern is a valid Float16.
type Float16 uint16

// Float16 constants for special values.
const (
	Zero        Float16 = 0x0000 // Positive zero
	NegZero     Float16 = 0x8000 // Negative zero
	One         Float16 = 0x3C00 // 1.0
	NegOne      Float16 = 0xBC00 // -1.0
	MaxValue    Float16 = 0x7BFF // 65504 (max finite value)
	LowestValue Float16 = 0xFBFF // -65504 (most negative finite value)
	MinNormal   Float16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	MinValue    Float16 = 0x0001 // Smallest denormal, 2^-24 (~5.96e-8)
	Epsilon     Float16 = 0x1400 // 2^-10, distance from 1.0 to the next value
	Inf         Float16 = 0x7C00 // Positive infinity
	NegInf      Float16 = 0xFC00 // Negative infinity
	NaN         Float16 = 0x7E00 // Quiet NaN (canonical)

	PositiveZero     = Zero
	NegativeZero     = NegZero
	PositiveInfinity = Inf
	NegativeInfinity = NegInf
)

const (
	// MaxExponent is the unbiased exponent of the largest finite value.
	MaxExponent = 15
	// MinExponent is the unbiased exponent of the smallest normal value.
	MinExponent = -14
	// Size is the number of bits in a Float16.
	Size = 16
)

// Internal constants
const (
	expBias      = 15
	expMask      = 0x1F
	mantissaBits = 10
	mantissaMask = 0x3FF
	signMask     = 0x8000
	absMask      = 0x7FFF
	expField     = 0x7C00
	quietBit     = 0x0200
)

// FromBits creates a Float16 from raw bits.
func FromBits(bits uint16) Float16 {
	return Float16(bits)
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// FromFields assembles a Float16 from its sign (0 or 1), biased exponent and
// significand fields. Each field is masked to its width.
func FromFields(sign, exp, significand uint16) Float16 {
	return Float16((sign&1)<<15 | (exp&expMask)<<mantissaBits | significand&mantissaMask)
}

// SignBit returns the sign bit in place, either 0 or 0x8000.
func (h Float16) SignBit() uint16 {
	return uint16(h) & signMask
}

// ExponentBits returns the biased 5-bit exponent field.
func (h Float16) ExponentBits() uint16 {
	return uint16(h>>mantissaBits) & expMask
}

// SignificandBits returns the 10-bit significand field, without the implicit
// leading bit of normalized values.
func (h Float16) SignificandBits() uint16 {
	return uint16(h) & mantissaMask
}

// Exponent returns the unbiased exponent of h. Infinities and NaNs report
// MaxExponent+1; zeros and denormals report MinExponent-1.
func (h Float16) Exponent() int {
	return int(h.ExponentBits()) - expBias
}
