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

// Package form implements Form XObjects, the self-contained drawings used
// as annotation appearance streams.
package form

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfmarkup/graphics"
	"seehuhn.de/go/pdfmarkup/pdf"
)

// Form represents a PDF Form XObject.
//
// See section 8.10 of ISO 32000-2:2020 for details.
type Form struct {
	Ref pdf.Reference

	// BBox is the bounding box of the form, in form space.
	BBox pdf.Rectangle

	// Matrix maps form space to the user space of the annotation.
	Matrix matrix.Matrix

	// Resources (optional) lists the named resources used by Content.
	Resources *pdf.Resources

	Content *graphics.ContentStream

	// Compress enables FlateDecode compression of the content stream.
	Compress bool
}

var _ pdf.Indirect = (*Form)(nil)

// New allocates a Form XObject with the given bounding box.  The form
// matrix moves the lower left corner of bbox to the origin, and the
// content stream is empty.
func New(alloc pdf.Allocator, bbox pdf.Rectangle) (*Form, error) {
	ref, err := alloc.Alloc()
	if err != nil {
		return nil, err
	}
	f := &Form{
		Ref:     ref,
		BBox:    bbox,
		Matrix:  matrix.Translate(-bbox.LLx, -bbox.LLy),
		Content: &graphics.ContentStream{},
	}
	return f, nil
}

// Reference returns the object reference of the form.
// This implements the [pdf.Indirect] interface.
func (f *Form) Reference() pdf.Reference {
	return f.Ref
}

// AsStream returns the stream object representing the form.
func (f *Form) AsStream() (*pdf.Stream, error) {
	dict := pdf.Dict{
		"Type":     pdf.Name("XObject"),
		"Subtype":  pdf.Name("Form"),
		"FormType": pdf.Integer(1),
		"BBox":     &f.BBox,
	}
	if f.Matrix != matrix.Identity && f.Matrix != (matrix.Matrix{}) {
		dict["Matrix"] = pdf.NumberArray(f.Matrix[:]...)
	}
	if !f.Resources.IsEmpty() {
		dict["Resources"] = f.Resources.AsDict()
	}

	var body []byte
	if f.Content != nil {
		var err error
		body, err = f.Content.Bytes()
		if err != nil {
			return nil, err
		}
	}

	stm := &pdf.Stream{Dict: dict, Data: body}
	if f.Compress {
		err := stm.Compress()
		if err != nil {
			return nil, err
		}
	}
	return stm, nil
}

// WriteObject returns the encoded stream object.
// This implements the [pdf.Indirect] interface.
func (f *Form) WriteObject(enc pdf.Encryptor) ([]byte, error) {
	stm, err := f.AsStream()
	if err != nil {
		return nil, err
	}
	return pdf.Marshal(stm, enc, f.Ref)
}
