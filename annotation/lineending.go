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

package annotation

import (
	"fmt"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// LineEndingStyle is a decoration drawn at an end point of a line
// annotation.
//
// Only [LineEndingNone] and [LineEndingOpenArrow] are drawn by the default
// appearance; the remaining styles are written to the annotation dictionary,
// but viewers which rely on the appearance stream will not show them.
type LineEndingStyle uint8

// These are the line ending styles defined in the PDF specification.
const (
	LineEndingNone LineEndingStyle = iota
	LineEndingSquare
	LineEndingCircle
	LineEndingDiamond
	LineEndingOpenArrow
	LineEndingClosedArrow
	LineEndingButt
	LineEndingROpenArrow
	LineEndingRClosedArrow
	LineEndingSlash
)

var lineEndingNames = [...]pdf.Name{
	LineEndingNone:         "None",
	LineEndingSquare:       "Square",
	LineEndingCircle:       "Circle",
	LineEndingDiamond:      "Diamond",
	LineEndingOpenArrow:    "OpenArrow",
	LineEndingClosedArrow:  "ClosedArrow",
	LineEndingButt:         "Butt",
	LineEndingROpenArrow:   "ROpenArrow",
	LineEndingRClosedArrow: "RClosedArrow",
	LineEndingSlash:        "Slash",
}

// Name returns the PDF name of the style.
// For values outside the enumeration, the empty name is returned.
func (s LineEndingStyle) Name() pdf.Name {
	if int(s) >= len(lineEndingNames) {
		return ""
	}
	return lineEndingNames[s]
}

func (s LineEndingStyle) String() string {
	if int(s) >= len(lineEndingNames) {
		return fmt.Sprintf("LineEndingStyle(%d)", int(s))
	}
	return string(lineEndingNames[s])
}

// ParseLineEndingStyle converts a PDF name into a line ending style.
func ParseLineEndingStyle(name pdf.Name) (LineEndingStyle, error) {
	for i, n := range lineEndingNames {
		if n == name {
			return LineEndingStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown line ending style %q", name)
}
