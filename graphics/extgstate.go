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

package graphics

import (
	"math"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// PDF 2.0 sections: 8.4.5

// ExtGState is a graphics state parameter dictionary.  Only the constant
// alpha entries are supported.
type ExtGState struct {
	Ref pdf.Reference

	// StrokeAlpha is the constant opacity for stroking operations.
	StrokeAlpha float64

	// FillAlpha is the constant opacity for non-stroking operations.
	FillAlpha float64
}

var _ pdf.Indirect = (*ExtGState)(nil)

// NewExtGState allocates a graphics state parameter dictionary which sets
// both stroke and fill opacity to alpha.
func NewExtGState(alloc pdf.Allocator, alpha float64) (*ExtGState, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, pdf.Error("opacity out of range")
	}
	ref, err := alloc.Alloc()
	if err != nil {
		return nil, err
	}
	return &ExtGState{
		Ref:         ref,
		StrokeAlpha: alpha,
		FillAlpha:   alpha,
	}, nil
}

// Reference returns the object reference of the dictionary.
// This implements the [pdf.Indirect] interface.
func (s *ExtGState) Reference() pdf.Reference {
	return s.Ref
}

// AsDict returns the graphics state parameter dictionary.
func (s *ExtGState) AsDict() pdf.Dict {
	return pdf.Dict{
		"Type": pdf.Name("ExtGState"),
		"CA":   pdf.Number(s.StrokeAlpha),
		"ca":   pdf.Number(s.FillAlpha),
	}
}

// WriteObject returns the encoded dictionary.
// This implements the [pdf.Indirect] interface.
func (s *ExtGState) WriteObject(enc pdf.Encryptor) ([]byte, error) {
	return pdf.Marshal(s.AsDict(), enc, s.Ref)
}
