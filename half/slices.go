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

import "golang.org/x/exp/constraints"

// This file provides bulk conversions between Float16 slices and native float slices.
//
// Promotion: Float16 -> float32/float64 (widens, no precision loss)
// Demotion: float32/float64 -> Float16 (narrows, may lose precision or overflow)
//
// float64 sources are narrowed to float32 first, exactly like FromFloat64.

// FromFloats demotes src into dst with round-to-nearest-even.
// It converts min(len(dst), len(src)) elements and returns that count.
func FromFloats[T constraints.Float](dst []Float16, src []T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToFloat16(float32(src[i]))
	}
	return n
}

// ToFloats promotes src into dst.
// It converts min(len(dst), len(src)) elements and returns that count.
func ToFloats[T constraints.Float](dst []T, src []Float16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = T(Float16ToFloat32(src[i]))
	}
	return n
}

// FromBitsSlice reinterprets raw uint16 patterns as Float16 values, copying
// min(len(dst), len(src)) elements.
func FromBitsSlice(dst []Float16, src []uint16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float16(src[i])
	}
	return n
}

// ToBitsSlice writes the raw patterns of src to dst, copying
// min(len(dst), len(src)) elements.
func ToBitsSlice(dst []uint16, src []Float16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = uint16(src[i])
	}
	return n
}
