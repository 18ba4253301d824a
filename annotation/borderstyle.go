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
	"math"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// PDF 2.0 sections: 12.5.4

// BorderKind is the style of an annotation border.
type BorderKind uint8

// These are the border styles defined in the PDF specification.
const (
	BorderSolid BorderKind = iota
	BorderDashed
	BorderBeveled
	BorderInset
	BorderUnderline
)

var borderKindNames = [...]pdf.Name{
	BorderSolid:     "S",
	BorderDashed:    "D",
	BorderBeveled:   "B",
	BorderInset:     "I",
	BorderUnderline: "U",
}

// Name returns the PDF name of the border style, for example /D for
// dashed borders.
func (k BorderKind) Name() pdf.Name {
	if int(k) >= len(borderKindNames) {
		return ""
	}
	return borderKindNames[k]
}

func (k BorderKind) String() string {
	if int(k) >= len(borderKindNames) {
		return fmt.Sprintf("BorderKind(%d)", int(k))
	}
	return string(borderKindNames[k])
}

// BorderStyle describes the width and dash pattern of the lines used to
// draw an annotation.
//
// This corresponds to the /BS entry in the PDF annotation dictionary.
type BorderStyle struct {
	// Width is the border width in points.
	// If 0, no border is drawn.
	Width float64

	Style BorderKind

	// DashArray defines a pattern of dashes and gaps.  This is only used
	// if Style is BorderDashed.  If the array is empty, [3] is used.
	DashArray []float64
}

// defaultBorderWidth is the line width used when no border style is set.
const defaultBorderWidth = 1

// NewBorderStyle returns a validated border style.
func NewBorderStyle(width float64, style BorderKind, dash ...float64) (*BorderStyle, error) {
	b := &BorderStyle{
		Width:     width,
		Style:     style,
		DashArray: dash,
	}
	err := b.check()
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *BorderStyle) check() error {
	if math.IsNaN(b.Width) || math.IsInf(b.Width, 0) || b.Width < 0 {
		return &BorderWidthError{Width: b.Width}
	}
	if b.Style.Name() == "" {
		return pdf.Error("invalid border style " + b.Style.String())
	}
	if b.Style != BorderDashed && len(b.DashArray) > 0 {
		return pdf.Error("unexpected dash array")
	}
	allZero := true
	for _, d := range b.DashArray {
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return pdf.Error("invalid dash value")
		}
		if d != 0 {
			allZero = false
		}
	}
	if len(b.DashArray) > 0 && allZero {
		return pdf.Error("dash array must not be all zero")
	}
	return nil
}

// AsDict returns the border style dictionary.
// Entries with default values are omitted.
func (b *BorderStyle) AsDict() pdf.Dict {
	d := pdf.Dict{
		"Type": pdf.Name("Border"),
	}
	if b.Width != 1 {
		d["W"] = pdf.Number(b.Width)
	}
	if b.Style != BorderSolid {
		d["S"] = b.Style.Name()
	}
	if b.Style == BorderDashed && len(b.DashArray) > 0 {
		d["D"] = pdf.NumberArray(b.DashArray...)
	}
	return d
}

// width returns the effective line width for a possibly missing border
// style.
func (b *BorderStyle) width() float64 {
	if b == nil {
		return defaultBorderWidth
	}
	return b.Width
}
