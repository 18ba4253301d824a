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
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// Rectangle represents a PDF rectangle.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (rect *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", rect.LLx, rect.LLy, rect.URx, rect.URy)
}

// PDF implements the [Object] interface.
func (rect *Rectangle) PDF(w io.Writer) error {
	return NumberArray(rect.LLx, rect.LLy, rect.URx, rect.URy).PDF(w)
}

// IsZero is true if the rectangle is the zero rectangle object.
func (rect Rectangle) IsZero() bool {
	return rect.LLx == 0 && rect.LLy == 0 && rect.URx == 0 && rect.URy == 0
}

// IsFinite reports whether all corner coordinates are finite numbers.
func (rect Rectangle) IsFinite() bool {
	return isFinite(rect.LLx) && isFinite(rect.LLy) &&
		isFinite(rect.URx) && isFinite(rect.URy)
}

// Contains reports whether other lies inside rect, up to a tolerance of eps.
func (rect *Rectangle) Contains(other *Rectangle, eps float64) bool {
	return other.LLx >= rect.LLx-eps && other.LLy >= rect.LLy-eps &&
		other.URx <= rect.URx+eps && other.URy <= rect.URy+eps
}

// Round rounds a number to the given number of decimal digits.
// The result prints without scientific notation and without trailing zeros.
func Round(x float64, digits int) float64 {
	if !isFinite(x) {
		return x
	}
	s := strconv.FormatFloat(x, 'f', digits, 64)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err) // unreachable, s is a valid decimal number
	}
	if y == 0 {
		return 0 // avoid "-0"
	}
	return y
}

// TextString creates a String object using the "text string" encoding.
// Strings which only use printable ASCII characters, tab, newline and
// carriage return are stored as they are; all other strings are stored in
// UTF-16BE encoding with a byte order mark.
func TextString(s string) String {
	if isPlainText(s) {
		return String(s)
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 is replaced by U+FFFD, so this cannot happen
		return String(s)
	}
	return String(buf)
}

func isPlainText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

