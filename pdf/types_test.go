// seehuhn.de/go/pdfmarkup - PDF markup annotations and their appearance streams
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-3), "-3"},
		{Real(1), "1."},
		{Real(1.5), "1.5"},
		{Number(1), "1"},
		{Number(-0.5), "-0.5"},
		{Number(0.1), "0.1"},
		{Number(1e20), "100000000000000000000"},
		{Number(math.NaN()), "null"},
		{Number(math.Inf(1)), "null"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String("a\nb"), `(a\nb)`},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String([]byte{0, 1, 2}), "<000102>"},
		{Name("Line"), "/Line"},
		{Name("A B"), "/A#20B"},
		{Name("a#b"), "/a#23b"},
		{Name("x/y"), "/x#2fy"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{NumberArray(10, 10, 110, 10), "[10 10 110 10]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(7, 2), "7 2 R"},
		{&Rectangle{0, 0, 100, 50.5}, "[0 0 100 50.5]"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("string wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestNotFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		buf := &bytes.Buffer{}
		err := Number(x).PDF(buf)
		if err != ErrNotFinite {
			t.Errorf("Number(%g): got error %v", x, err)
		}
		err = Real(x).PDF(buf)
		if err != ErrNotFinite {
			t.Errorf("Real(%g): got error %v", x, err)
		}
	}
}

func TestNumberArrayIdempotent(t *testing.T) {
	a := NumberArray(1.25, -3, 1e-7, 12345678.5)
	first := Format(a)
	second := Format(a)
	if first != second {
		t.Errorf("%q != %q", first, second)
	}
	if strings.Contains(first, "e") {
		t.Errorf("scientific notation in %q", first)
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(123, 4)
	if ref.Number() != 123 || ref.Generation() != 4 {
		t.Errorf("wrong reference %d %d", ref.Number(), ref.Generation())
	}
	if s := ref.String(); s != "obj_123@4" {
		t.Errorf("wrong string %q", s)
	}
}

func FuzzNumber(f *testing.F) {
	f.Add(0.0)
	f.Add(1.0)
	f.Add(-0.5)
	f.Add(1e20)
	f.Add(1e-300)
	f.Add(float64(1 << 53))
	f.Fuzz(func(t *testing.T, x float64) {
		buf := &bytes.Buffer{}
		err := Number(x).PDF(buf)
		if !isFinite(x) {
			if err == nil {
				t.Errorf("missing error for %g", x)
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		s := buf.String()
		if strings.ContainsAny(s, "eE") {
			t.Fatalf("scientific notation: %q", s)
		}
		y, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatal(err)
		}
		if y != x {
			t.Errorf("%q decodes to %g, not %g", s, y, x)
		}
	})
}

// parseString decodes the output of String.PDF.
func parseString(t *testing.T, s string) []byte {
	t.Helper()
	if strings.HasPrefix(s, "<") {
		res, err := hex.DecodeString(s[1 : len(s)-1])
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		t.Fatalf("malformed string %q", s)
	}
	body := s[1 : len(s)-1]
	var res []byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			res = append(res, c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			res = append(res, '\n')
		case 'r':
			res = append(res, '\r')
		case 't':
			res = append(res, '\t')
		case 'b':
			res = append(res, '\b')
		case 'f':
			res = append(res, '\f')
		case '0', '1', '2', '3':
			v, err := strconv.ParseUint(body[i:i+3], 8, 8)
			if err != nil {
				t.Fatal(err)
			}
			res = append(res, byte(v))
			i += 2
		default:
			res = append(res, body[i])
		}
	}
	return res
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte("a(b"))
	f.Add([]byte("a)b("))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{0xFF, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		enc := Format(String(data))
		out := parseString(t, enc)
		if !bytes.Equal(out, data) {
			t.Errorf("wrong string: %q != %q", out, data)
		}
	})
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out []byte
	}{
		{"", []byte{}},
		{"hello", []byte("hello")},
		{"a\tb\n", []byte("a\tb\n")},
		{"Bär", []byte{0xFE, 0xFF, 0x00, 'B', 0x00, 0xE4, 0x00, 'r'}},
		{"\x01", []byte{0xFE, 0xFF, 0x00, 0x01}},
	}
	for _, test := range cases {
		out := TextString(test.in)
		if !bytes.Equal(out, test.out) {
			t.Errorf("TextString(%q) = %x, expected %x", test.in, []byte(out), test.out)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{1.23456, 1.235},
		{-0.0001, 0},
		{100, 100},
		{-1.5, -1.5},
	}
	for _, test := range cases {
		out := Round(test.in, 3)
		if out != test.out || math.Signbit(out) != math.Signbit(test.out) {
			t.Errorf("Round(%g) = %g, expected %g", test.in, out, test.out)
		}
	}
}
