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

	"github.com/pkg/errors"
)

// ErrRoundNaN is returned when rounding a NaN to an integer.
var ErrRoundNaN = errors.New("cannot round NaN")

// Magnitudes that bound the integral-rounding fast paths.
const (
	oneBits       = 0x3C00 // 1.0
	halfBits      = 0x3800 // 0.5
	noFracBits    = 0x6400 // 1024.0: from here on every value is integral
	fracBitsLimit = 25     // fraction bits = fracBitsLimit - exponent field
)

// The rounding functions below work on |h|:
//   - below 1.0 the result is ±0 or ±1,
//   - from 1.0 to 1024.0 the fraction bits are masked off after adding a
//     per-function correction, which may carry into the exponent,
//   - from 1024.0 on, and for infinities, h is already integral.
// NaN inputs come back quieted.

// fracMask returns the mask of fraction bits for a magnitude in [1, 1024).
func fracMask(abs uint32) (mask uint32, shift uint32) {
	shift = fracBitsLimit - abs>>mantissaBits
	return 1<<shift - 1, shift
}

func quietNaN(h Float16) Float16 {
	if h.IsNaN() {
		return h | quietBit
	}
	return h
}

// Round returns the nearest integer, rounding half away from zero.
func (h Float16) Round() Float16 {
	bits := uint32(h)
	abs := bits & absMask
	result := bits
	switch {
	case abs < oneBits:
		result &= signMask
		if abs >= halfBits {
			result |= oneBits
		}
	case abs < noFracBits:
		mask, shift := fracMask(abs)
		result += 1 << (shift - 1)
		result &^= mask
	}
	return quietNaN(Float16(result))
}

// RoundToEven returns the nearest integer, rounding ties to even.
func (h Float16) RoundToEven() Float16 {
	bits := uint32(h)
	abs := bits & absMask
	result := bits
	switch {
	case abs < oneBits:
		result &= signMask
		if abs > halfBits {
			result |= oneBits
		}
	case abs < noFracBits:
		mask, shift := fracMask(abs)
		// One less than half when the integer part is even, so ties go down.
		result += 1<<(shift-1) - (^(bits >> shift) & 1)
		result &^= mask
	}
	return quietNaN(Float16(result))
}

// Floor returns the greatest integer value less than or equal to h.
func (h Float16) Floor() Float16 {
	bits := uint32(h)
	abs := bits & absMask
	result := bits
	switch {
	case abs < oneBits:
		result &= signMask
		if bits > signMask {
			// negative, nonzero
			result |= oneBits
		}
	case abs < noFracBits:
		mask, _ := fracMask(abs)
		// Negative values grow in magnitude.
		result += mask & -(bits >> 15)
		result &^= mask
	}
	return quietNaN(Float16(result))
}

// Ceil returns the least integer value greater than or equal to h.
func (h Float16) Ceil() Float16 {
	bits := uint32(h)
	abs := bits & absMask
	result := bits
	switch {
	case abs < oneBits:
		result &= signMask
		if bits&signMask == 0 && abs != 0 {
			result |= oneBits
		}
	case abs < noFracBits:
		mask, _ := fracMask(abs)
		// Positive values grow in magnitude.
		result += mask & (bits>>15 - 1)
		result &^= mask
	}
	return quietNaN(Float16(result))
}

// Trunc returns the integer value of h, rounding toward zero.
func (h Float16) Trunc() Float16 {
	bits := uint32(h)
	abs := bits & absMask
	result := bits
	switch {
	case abs < oneBits:
		result &= signMask
	case abs < noFracBits:
		mask, _ := fracMask(abs)
		result &^= mask
	}
	return quietNaN(Float16(result))
}

// RoundToInt rounds h to the nearest int32, ties toward positive infinity.
// Infinities saturate. A NaN input returns ErrRoundNaN.
func (h Float16) RoundToInt() (int32, error) {
	if h.IsNaN() {
		return 0, ErrRoundNaN
	}
	// Exact in float64 for every Float16.
	f := math.Floor(h.Float64() + 0.5)
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32, nil
	case f <= math.MinInt32:
		return math.MinInt32, nil
	}
	return int32(f), nil
}

// RoundToInt64 rounds h to the nearest int64, ties toward positive infinity.
// Infinities saturate. A NaN input returns ErrRoundNaN.
func (h Float16) RoundToInt64() (int64, error) {
	if h.IsNaN() {
		return 0, ErrRoundNaN
	}
	f := math.Floor(h.Float64() + 0.5)
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	}
	return int64(f), nil
}
