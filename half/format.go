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
	"bytes"
	"encoding"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	_ fmt.Formatter            = Float16(0)
	_ fmt.Stringer             = Float16(0)
	_ encoding.TextMarshaler   = Float16(0)
	_ encoding.TextUnmarshaler = (*Float16)(nil)
)

// HexString returns the hexadecimal floating-point representation of h:
// "NaN", "Infinity", "-Infinity", "0x0.0p0" for zero, "0x1.<hex>p<exp>"
// for normal values and "0x0.<hex>p-14" for denormals. The 10 significand
// bits are written as three hex digits with trailing zeros removed.
func (h Float16) HexString() string {
	e := h.ExponentBits()
	m := h.SignificandBits()
	if e == expMask {
		switch {
		case m != 0:
			return "NaN"
		case h.IsNegative():
			return "-Infinity"
		}
		return "Infinity"
	}

	var b strings.Builder
	if h.IsNegative() {
		b.WriteByte('-')
	}
	switch {
	case e == 0 && m == 0:
		b.WriteString("0x0.0p0")
		return b.String()
	case e == 0:
		b.WriteString("0x0.")
	default:
		b.WriteString("0x1.")
	}

	digits := strings.TrimRight(fmt.Sprintf("%03x", m<<2), "0")
	if digits == "" {
		digits = "0"
	}
	b.WriteString(digits)
	b.WriteByte('p')
	if e == 0 {
		b.WriteString(strconv.Itoa(MinExponent))
	} else {
		b.WriteString(strconv.Itoa(int(e) - expBias))
	}
	return b.String()
}

// String returns the shortest decimal representation that Parse maps back
// to h, or "NaN", "+Inf", "-Inf".
func (h Float16) String() string {
	f := float64(h.Float32())
	if !h.IsFinite() {
		return strconv.FormatFloat(f, 'g', -1, 32)
	}
	// Five significant digits always identify a binary16 value; try fewer first.
	s := strconv.FormatFloat(f, 'e', 4, 64)
	for prec := 1; prec < 5; prec++ {
		short := strconv.FormatFloat(f, 'e', prec-1, 64)
		if p, err := Parse(short); err == nil && p == h {
			s = short
			break
		}
	}
	// Re-render the rounded decimal in its shortest natural form ("65500",
	// not "6.55e+04").
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// Format implements [fmt.Formatter].
//
// %v and %s print String; %e, %E, %f, %F, %g and %G format the float32 value
// with the given flags; %x and %X print HexString; %b prints the 16 raw bits.
func (h Float16) Format(s fmt.State, verb rune) {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), h.Float32())
	case 'v', 's':
		if _, ok := s.Precision(); ok {
			fmt.Fprintf(s, fmt.FormatString(s, 'g'), h.Float32())
			return
		}
		str := h.String()
		if s.Flag('+') && !h.IsNegative() && !h.IsNaN() && str[0] != '+' {
			str = "+" + str
		}
		pad(s, str)
	case 'x':
		pad(s, h.HexString())
	case 'X':
		pad(s, strings.ToUpper(h.HexString()))
	case 'b':
		pad(s, fmt.Sprintf("%016b", uint16(h)))
	default:
		fmt.Fprintf(s, "%%!%c(half.Float16=%s)", verb, h.String())
	}
}

// pad writes str honouring the width and '-' flag of s.
func pad(s fmt.State, str string) {
	w, ok := s.Width()
	if !ok || w <= len(str) {
		io.WriteString(s, str)
		return
	}
	fill := strings.Repeat(" ", w-len(str))
	if s.Flag('-') {
		io.WriteString(s, str+fill)
		return
	}
	io.WriteString(s, fill+str)
}

// ParseBits parses a raw 16-bit pattern such as "0x3C00", "0b0011110000000000"
// or "15360". The base follows Go integer literal prefixes.
func ParseBits(s string) (Float16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return Float16(v), nil
}

// MarshalText implements [encoding.TextMarshaler] using String.
func (h Float16) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts anything
// Parse accepts and, failing that, a "0x" bit-pattern literal.
func (h *Float16) UnmarshalText(text []byte) error {
	s := string(text)
	v, err := Parse(s)
	if err != nil {
		if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
			return err
		}
		if v, err = ParseBits(s); err != nil {
			return err
		}
	}
	*h = v
	return nil
}

// MarshalJSON encodes finite values as JSON numbers and NaN/±Inf as strings,
// since JSON has no literal for them.
func (h Float16) MarshalJSON() ([]byte, error) {
	if !h.IsFinite() {
		return []byte(strconv.Quote(h.String())), nil
	}
	return []byte(h.String()), nil
}

// UnmarshalJSON decodes a JSON number or string. null leaves h unchanged.
func (h *Float16) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return h.UnmarshalText(data)
}
