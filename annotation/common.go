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
	"math"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfmarkup/graphics/color"
	"seehuhn.de/go/pdfmarkup/pdf"
)

// PDF 2.0 sections: 12.5.2

// Common contains the fields shared by all annotation types.
type Common struct {
	// Ref is the object reference of the annotation dictionary.
	Ref pdf.Reference

	// Rect is the location of the annotation on the page, in default user
	// space units.  Any synthesized appearance is drawn inside this rectangle.
	//
	// This corresponds to the /Rect entry in the PDF annotation dictionary.
	Rect pdf.Rectangle

	// Contents (optional) is the text displayed for the annotation, or an
	// alternate description for annotations which do not display text.
	Contents string

	// Name (optional; PDF 1.4) uniquely identifies the annotation among all
	// annotations on the page.
	//
	// This corresponds to the /NM entry in the PDF annotation dictionary.
	Name string

	// Modified (optional; PDF 1.1) is the time of the last modification.
	//
	// This corresponds to the /M entry in the PDF annotation dictionary.
	Modified time.Time

	// Flags (optional; PDF 1.1) is a set of flags specifying various
	// characteristics of the annotation.
	//
	// This corresponds to the /F entry in the PDF annotation dictionary.
	Flags Flags

	// Color (optional) is used for the lines of the annotation.
	// If this is nil, no /C entry is written and the default appearance
	// is drawn in black.
	//
	// This corresponds to the /C entry in the PDF annotation dictionary.
	Color color.Color

	// Opacity (PDF 1.4) is the constant opacity value used to draw the
	// annotation.  The value must be in the range from 0 to 1.
	// Annotations created by the constructors start with opacity 1.
	//
	// This corresponds to the /CA entry in the PDF annotation dictionary.
	Opacity float64

	// Border (optional; PDF 1.2) specifies the line width and dash pattern.
	// If this is nil, solid lines of width 1 are used.
	//
	// This corresponds to the /BS entry in the PDF annotation dictionary.
	Border *BorderStyle

	// Appearance (optional; PDF 1.2) lists the appearance streams.
	// If this is nil when the annotation is written, a default appearance
	// is generated.
	//
	// This corresponds to the /AP entry in the PDF annotation dictionary.
	Appearance *AppearanceDict

	// Lang (optional; PDF 2.0) is the language of the text in the
	// annotation.
	Lang language.Tag

	// AdditionalObjects lists objects which must be written together with
	// the annotation, in order.
	AdditionalObjects []pdf.Indirect

	subtype pdf.Name
	alloc   pdf.Allocator
}

// Flags describe how an annotation is presented and how users may
// interact with it.
type Flags uint32

// These are the annotation flags defined in the PDF specification.
const (
	FlagInvisible      Flags = 1 << 0
	FlagHidden         Flags = 1 << 1 // PDF 1.2
	FlagPrint          Flags = 1 << 2 // PDF 1.2
	FlagNoZoom         Flags = 1 << 3 // PDF 1.3
	FlagNoRotate       Flags = 1 << 4 // PDF 1.3
	FlagNoView         Flags = 1 << 5 // PDF 1.3
	FlagReadOnly       Flags = 1 << 6 // PDF 1.3
	FlagLocked         Flags = 1 << 7 // PDF 1.4
	FlagToggleNoView   Flags = 1 << 8 // PDF 1.5
	FlagLockedContents Flags = 1 << 9 // PDF 1.7
)

// newCommon allocates the object reference for a new annotation.
func newCommon(alloc pdf.Allocator, subtype pdf.Name) (Common, error) {
	ref, err := alloc.Alloc()
	if err != nil {
		return Common{}, err
	}
	c := Common{
		Ref:     ref,
		Opacity: 1,
		subtype: subtype,
		alloc:   alloc,
	}
	return c, nil
}

// GetCommon returns the common annotation fields.
// This implements the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}

// validate appends the problems with the common fields to errs.
func (c *Common) validate(errs ErrorList, subtype pdf.Name) ErrorList {
	if c.subtype != subtype {
		errs = append(errs, &InvalidAnnotationTypeError{Got: c.subtype, Want: subtype})
	}
	if !c.Rect.IsFinite() {
		errs = append(errs, pdf.Error("annotation rectangle is not finite"))
	}
	if math.IsNaN(c.Opacity) || c.Opacity < 0 || c.Opacity > 1 {
		errs = append(errs, &OpacityRangeError{Value: c.Opacity})
	}
	if c.Color != nil {
		if err := color.Check(c.Color); err != nil {
			errs = append(errs, &ColorError{Key: "C", Err: err})
		}
	}
	if c.Border != nil {
		if err := c.Border.check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (c *Common) checkVersion(w *pdf.Writer) error {
	if c.Name != "" {
		if err := pdf.CheckVersion(w, "annotation NM entry", pdf.V1_4); err != nil {
			return err
		}
	}
	if !c.Modified.IsZero() {
		if err := pdf.CheckVersion(w, "annotation M entry", pdf.V1_1); err != nil {
			return err
		}
	}
	if c.Flags != 0 {
		if err := pdf.CheckVersion(w, "annotation F entry", pdf.V1_1); err != nil {
			return err
		}
	}
	if c.Opacity != 1 {
		if err := pdf.CheckVersion(w, "annotation CA entry", pdf.V1_4); err != nil {
			return err
		}
	}
	if c.Border != nil {
		if err := pdf.CheckVersion(w, "annotation BS entry", pdf.V1_2); err != nil {
			return err
		}
	}
	if err := pdf.CheckVersion(w, "appearance streams", pdf.V1_2); err != nil {
		return err
	}
	if c.Lang != language.Und {
		if err := pdf.CheckVersion(w, "annotation Lang entry", pdf.V2_0); err != nil {
			return err
		}
	}
	return nil
}

// writeCommonEntries starts the annotation dictionary and adds the entries
// shared by all annotation types.
func writeCommonEntries(e *pdf.Encoder, a Annotation) {
	c := a.GetCommon()

	e.BeginDict()
	e.Entry("Type", pdf.Name("Annot"))
	e.Entry("Subtype", a.AnnotationType())
	e.Entry("Rect", &c.Rect)
	if c.Contents != "" {
		e.Entry("Contents", pdf.TextString(c.Contents))
	}
	if c.Name != "" {
		e.Entry("NM", pdf.TextString(c.Name))
	}
	if !c.Modified.IsZero() {
		e.Entry("M", pdf.Date(c.Modified))
	}
	if c.Flags != 0 {
		e.Entry("F", pdf.Integer(c.Flags))
	}
	if c.Color != nil {
		e.Entry("C", color.AsArray(c.Color))
	}
	if c.Opacity != 1 {
		e.Entry("CA", pdf.Number(c.Opacity))
	}
	if c.Border != nil {
		e.Entry("BS", c.Border.AsDict())
	}
	if c.Appearance != nil && c.Appearance.Normal != 0 {
		e.Entry("AP", c.Appearance.AsDict())
	}
	if c.Lang != language.Und {
		e.Entry("Lang", pdf.TextString(c.Lang.String()))
	}
}
