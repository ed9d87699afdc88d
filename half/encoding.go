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
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrShortBuffer is returned when a byte slice does not hold a whole number
// of 16-bit values.
var ErrShortBuffer = errors.New("half: odd number of bytes")

// PutFloat16 stores the 16-bit pattern of h in b[0:2].
func PutFloat16(b []byte, order binary.ByteOrder, h Float16) {
	order.PutUint16(b, uint16(h))
}

// Float16From reads a 16-bit pattern from b[0:2].
func Float16From(b []byte, order binary.ByteOrder) Float16 {
	return Float16(order.Uint16(b))
}

// AppendFloat16s appends the 16-bit patterns of src to dst.
func AppendFloat16s(dst []byte, order binary.AppendByteOrder, src []Float16) []byte {
	for _, h := range src {
		dst = order.AppendUint16(dst, uint16(h))
	}
	return dst
}

// DecodeFloat16s decodes consecutive 16-bit patterns from b into dst and
// returns how many were decoded: min(len(dst), len(b)/2).
func DecodeFloat16s(dst []Float16, b []byte, order binary.ByteOrder) (int, error) {
	if len(b)%2 != 0 {
		return 0, errors.Wrapf(ErrShortBuffer, "decoding %d bytes", len(b))
	}
	n := min(len(dst), len(b)/2)
	for i := range n {
		dst[i] = Float16(order.Uint16(b[2*i:]))
	}
	return n, nil
}
