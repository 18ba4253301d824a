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
	"log/slog"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// Annotation represents a PDF annotation.
//
// The shared fields live in [Common], which every annotation type embeds.
// The methods below are the ones [Write] needs to turn an annotation into
// object records.
type Annotation interface {
	// AnnotationType returns the type of the annotation, e.g. "Line".
	AnnotationType() pdf.Name

	// GetCommon returns the common annotation fields.
	GetCommon() *Common

	// Validate checks the annotation for structural problems.  All problems
	// found are returned.  If enact is true and problems were found, the
	// list is also returned as the error value.
	Validate(enact bool) (ErrorList, error)

	// WriteAnnotationObject returns the encoded annotation dictionary.
	// Strings are encrypted using enc, if enc is not nil.
	WriteAnnotationObject(enc pdf.Encryptor) ([]byte, error)

	// CreateDefaultAppearanceStream synthesizes an appearance stream for the
	// annotation.  The new objects are appended to Common.AdditionalObjects
	// and Common.Appearance is updated to refer to the new stream.
	//
	// This must be called at most once per annotation.
	CreateDefaultAppearanceStream() error
}

// markupAnnotation is implemented by all markup annotation types.
type markupAnnotation interface {
	GetMarkup() *Markup
}

var (
	_ Annotation       = (*Line)(nil)
	_ markupAnnotation = (*Line)(nil)
)

// Write validates the annotation a and writes it to w, followed by all
// auxiliary objects in the order they were queued.
//
// If the annotation has no appearance dictionary, a default appearance
// stream is synthesized first.  Annotations without an object reference
// or allocator are given ones from w.
func Write(w *pdf.Writer, a Annotation) error {
	c := a.GetCommon()
	if c.Ref == 0 {
		ref, err := w.Alloc()
		if err != nil {
			return err
		}
		c.Ref = ref
	}
	if c.alloc == nil {
		c.alloc = w
	}

	err := checkVersion(w, a)
	if err != nil {
		return err
	}

	_, err = a.Validate(true)
	if err != nil {
		return err
	}

	if c.Appearance == nil {
		err = a.CreateDefaultAppearanceStream()
		if err != nil {
			return err
		}
	}

	err = w.Write(record{a})
	if err != nil {
		return err
	}
	for _, obj := range c.AdditionalObjects {
		err = w.Write(obj)
		if err != nil {
			pdf.Logger().Warn("writing auxiliary object failed",
				slog.String("ref", obj.Reference().String()),
				slog.Any("error", err))
			return fmt.Errorf("annotation %s: %w", c.Ref, err)
		}
	}
	c.AdditionalObjects = nil
	return nil
}

// record presents an annotation as an indirect object.
type record struct {
	a Annotation
}

func (r record) Reference() pdf.Reference {
	return r.a.GetCommon().Ref
}

func (r record) WriteObject(enc pdf.Encryptor) ([]byte, error) {
	return r.a.WriteAnnotationObject(enc)
}

// versionChecker is implemented by annotation types whose fields need
// a minimum PDF version.
type versionChecker interface {
	checkVersion(w *pdf.Writer) error
}

func checkVersion(w *pdf.Writer, a Annotation) error {
	err := a.GetCommon().checkVersion(w)
	if err != nil {
		return err
	}
	if m, ok := a.(markupAnnotation); ok {
		err = m.GetMarkup().checkVersion(w)
		if err != nil {
			return err
		}
	}
	if v, ok := a.(versionChecker); ok {
		return v.checkVersion(w)
	}
	return nil
}
