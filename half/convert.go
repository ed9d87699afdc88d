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
	"strconv"
)

const (
	// float32 0.5: its mantissa ULP is 2^-24, the value of one half denormal step.
	denormalMagic      uint32  = 126 << 23
	denormalMagicFloat float32 = 0.5

	f32QuietBit = 0x00400000
)

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
// Handles overflow (to infinity), underflow (to zero), and special values.
// NaNs become quiet NaNs of the same sign; the payload is not kept.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint32(bits>>16) & signMask
	exp := int((bits >> 23) & 0xFF)
	mant := bits & 0x7FFFFF

	var outExp, outMant uint32
	if exp == 0xFF {
		// Inf or NaN
		outExp = expMask
		if mant != 0 {
			outMant = quietBit
		}
		return Float16(sign | outExp<<mantissaBits | outMant)
	}

	exp = exp - 127 + expBias // Rebias: 127 -> 15
	switch {
	case exp >= expMask:
		// Overflow to infinity
		outExp = expMask
	case exp <= 0:
		if exp < -10 {
			// Below half of the smallest denormal (this includes float32
			// denormals): flush to signed zero.
			break
		}
		// Denormalized result: restore the implicit bit and shift it into place.
		mant |= 0x800000
		shift := uint(14 - exp)
		outMant = mant >> shift
		low := mant & (1<<shift - 1)
		halfway := uint32(1) << (shift - 1)
		// Above halfway, or exactly halfway with an odd result.
		if low+(outMant&1) > halfway {
			outMant++
		}
	default:
		outExp = uint32(exp)
		outMant = mant >> 13
		// Bit 12 is the rounding bit, bits 0-11 are truncated.
		if (mant&0x1FFF)+(outMant&1) > 0x1000 {
			outMant++
		}
	}

	// The increments above may carry out of the significand into the exponent,
	// which yields the next binade (or infinity) as required; hence the add.
	return Float16(sign | (outExp<<mantissaBits + outMant))
}

// Float16ToFloat32 converts a single Float16 to float32.
// The conversion is exact; NaNs are returned quieted with their sign and payload.
func Float16ToFloat32(h Float16) float32 {
	bits := uint32(h)
	sign := (bits & signMask) << 16
	exp := (bits >> mantissaBits) & expMask
	mant := bits & mantissaMask

	switch exp {
	case 0:
		if mant == 0 {
			// Zero (positive or negative)
			return math.Float32frombits(sign)
		}
		// Denormal: 0.5 + m*2^-24 - 0.5 is exact in float32.
		o := math.Float32frombits(denormalMagic+mant) - denormalMagicFloat
		if sign != 0 {
			return -o
		}
		return o
	case expMask:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7F800000 | f32QuietBit | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-expBias)<<23 | mant<<13)
}

// New creates a Float16 from a float32 value.
func New(f float32) Float16 {
	return Float32ToFloat16(f)
}

// FromFloat64 creates a Float16 from a float64 value. The value is narrowed to
// float32 first.
func FromFloat64(f float64) Float16 {
	return Float32ToFloat16(float32(f))
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts this Float16 to float64.
func (h Float16) Float64() float64 {
	return float64(Float16ToFloat32(h))
}

// Parse converts the decimal (or hexadecimal float) string s to the nearest
// Float16. The string is parsed as a float32 and then converted.
//
// Malformed input returns the *strconv.NumError produced by
// strconv.ParseFloat. Values out of the float32 range are not an error: they
// become ±Inf or signed zero.
func Parse(s string) (Float16, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return NaN, err
		}
	}
	return Float32ToFloat16(float32(f)), nil
}

// MustParse is like Parse but panics if s cannot be parsed.
// It is meant for constants in tests and examples.
func MustParse(s string) Float16 {
	h, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Int32 converts h to int32, truncating toward zero. NaN yields 0 and
// infinities saturate.
func (h Float16) Int32() int32 {
	f := h.Float32()
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// Int64 converts h to int64, truncating toward zero. NaN yields 0 and
// infinities saturate.
func (h Float16) Int64() int64 {
	f := h.Float32()
	switch {
	case f != f:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Int16 returns the low 16 bits of h.Int32().
func (h Float16) Int16() int16 {
	return int16(h.Int32())
}

// Int8 returns the low 8 bits of h.Int32().
func (h Float16) Int8() int8 {
	return int8(h.Int32())
}
