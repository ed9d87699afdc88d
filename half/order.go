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

// sortKey maps h to an integer that sorts in the same order as Compare.
// All NaNs collapse to the canonical NaN first, so they share one key above
// +Inf. Negative patterns map to negative integers, -0 just below +0.
func sortKey(h Float16) int32 {
	if h.IsNaN() {
		h = NaN
	}
	if h&signMask != 0 {
		return -int32(h&absMask) - 1
	}
	return int32(h)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b under a total order: -Inf < finite < +Inf < NaN, with
// -0 < +0 and all NaNs equal to each other.
func Compare(a, b Float16) int {
	ka, kb := sortKey(a), sortKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}

// Equal reports whether a == b as IEEE 754 values: NaN equals nothing and
// +0 equals -0.
func (a Float16) Equal(b Float16) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b || (a|b)&absMask == 0
}

// Less reports whether a < b as IEEE 754 values. It is false if either is NaN.
func (a Float16) Less(b Float16) bool {
	if a.IsNaN() || b.IsNaN() || (a|b)&absMask == 0 {
		return false
	}
	return sortKey(a) < sortKey(b)
}

// LessEq reports whether a <= b as IEEE 754 values.
func (a Float16) LessEq(b Float16) bool {
	return a.Less(b) || a.Equal(b)
}

// Greater reports whether a > b as IEEE 754 values.
func (a Float16) Greater(b Float16) bool {
	return b.Less(a)
}

// GreaterEq reports whether a >= b as IEEE 754 values.
func (a Float16) GreaterEq(b Float16) bool {
	return b.Less(a) || a.Equal(b)
}

// Ulp returns the size of the unit in the last place of h: the distance
// from |h| to the next larger magnitude, NextUp(|h|) - |h|.
//
// Special cases are:
//
//	Ulp(NaN) = NaN
//	Ulp(±Inf) = +Inf
//	Ulp(±0) = MinValue
//	Ulp(±MaxValue) = +Inf
func (h Float16) Ulp() Float16 {
	switch {
	case h.IsNaN():
		return h | quietBit
	case h.IsInf(), h&absMask == MaxValue:
		return Inf
	}
	e := h.ExponentBits()
	if e == 0 {
		e = 1
	}
	if e > mantissaBits {
		return Float16((e - mantissaBits) << mantissaBits)
	}
	return Float16(1) << (e - 1)
}

// NextUp returns the least value greater than h. NaN and +Inf are returned
// unchanged; either zero steps to MinValue.
func (h Float16) NextUp() Float16 {
	switch {
	case h.IsNaN() || h == Inf:
		return h
	case h.IsZero():
		return MinValue
	case h&signMask != 0:
		return h - 1
	}
	return h + 1
}

// NextDown returns the greatest value less than h. NaN and -Inf are returned
// unchanged; either zero steps to -MinValue.
func (h Float16) NextDown() Float16 {
	switch {
	case h.IsNaN() || h == NegInf:
		return h
	case h.IsZero():
		return MinValue | signMask
	case h&signMask != 0:
		return h + 1
	}
	return h - 1
}

// NextTowards returns the value adjacent to h in the direction of dir.
// If either is NaN the result is NaN; if they are equal dir is returned.
func (h Float16) NextTowards(dir Float16) Float16 {
	switch {
	case h.IsNaN():
		return h | quietBit
	case dir.IsNaN():
		return dir | quietBit
	case h.Equal(dir):
		return dir
	case h.Less(dir):
		return h.NextUp()
	}
	return h.NextDown()
}
