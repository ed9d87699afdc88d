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

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&absMask > expField
}

// IsSignaling returns true if h is a NaN whose quiet bit is clear.
func (h Float16) IsSignaling() bool {
	return h.IsNaN() && h&quietBit == 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&absMask == expField
}

// IsInfSign reports whether h is an infinity, according to sign.
// If sign > 0, IsInfSign reports whether h is positive infinity.
// If sign < 0, IsInfSign reports whether h is negative infinity.
// If sign == 0, IsInfSign reports whether h is either infinity.
func (h Float16) IsInfSign(sign int) bool {
	return sign >= 0 && h == Inf || sign <= 0 && h == NegInf
}

// IsFinite returns true if h is neither infinite nor NaN.
func (h Float16) IsFinite() bool {
	return h&expField != expField
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&absMask == 0
}

// IsNormalized returns true if h is a finite, nonzero, non-denormal value.
func (h Float16) IsNormalized() bool {
	e := h & expField
	return e != 0 && e != expField
}

// IsDenormal returns true if h is a denormalized number.
func (h Float16) IsDenormal() bool {
	return h&expField == 0 && h&mantissaMask != 0
}

// IsNegative returns true if the sign bit is set. This includes -0 and
// negative NaNs.
func (h Float16) IsNegative() bool {
	return h&signMask != 0
}

// Signum returns NaN for NaN, +0 for either zero, and ±1 matching the sign
// of h otherwise.
func (h Float16) Signum() Float16 {
	switch {
	case h.IsNaN():
		return h | quietBit
	case h.IsZero():
		return Zero
	}
	return One | h&signMask
}
