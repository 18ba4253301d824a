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

	"seehuhn.de/go/pdfmarkup/graphics/color"
	"seehuhn.de/go/pdfmarkup/pdf"
)

// PDF 2.0 sections: 12.5.6.7

// Line represents a line annotation that displays a single straight line on
// the page.
type Line struct {
	Common
	Markup

	// Points holds the coordinates [x1 y1 x2 y2] of the start and end point
	// of the line, in default user space.  Only the first four entries are
	// used.
	//
	// This corresponds to the /L entry in the PDF annotation dictionary.
	Points []float64

	// LineEndingStyles (optional; PDF 1.4) gives the decorations for the
	// start and end point of the line.  Only the first two entries are used.
	//
	// This corresponds to the /LE entry in the PDF annotation dictionary.
	LineEndingStyles []LineEndingStyle

	// FillColor (optional; PDF 1.4) is the color used to fill the
	// annotation's line endings, if applicable.
	//
	// This corresponds to the /IC entry in the PDF annotation dictionary.
	FillColor color.Color

	// Caption (PDF 1.6) indicates whether the text from Common.Contents is
	// shown as part of the line's appearance.
	//
	// This corresponds to the /Cap entry in the PDF annotation dictionary.
	Caption bool

	// LL (PDF 1.6) is the length of the leader lines which extend from the
	// end points perpendicular to the line.  Positive values place the
	// line to the left of the leader lines, when looking from start to end.
	LL float64

	// LLE (PDF 1.6) is the non-negative length of the leader line
	// extensions beyond the line.
	LLE float64

	// LLO (PDF 1.7) is the non-negative gap between the end points and the
	// start of the leader lines.
	LLO float64
}

// Intents for line annotations, used in Markup.IT.
const (
	IntentLineArrow     pdf.Name = "LineArrow"
	IntentLineDimension pdf.Name = "LineDimension"
)

// minLinePoints is the number of coordinates needed for a line.
const minLinePoints = 4

// NewLine creates a new line annotation.  The object reference of the
// annotation is allocated immediately; alloc is also used for the objects
// of the default appearance.
func NewLine(alloc pdf.Allocator) (*Line, error) {
	c, err := newCommon(alloc, "Line")
	if err != nil {
		return nil, err
	}
	return &Line{Common: c}, nil
}

// AnnotationType returns "Line".
// This implements the [Annotation] interface.
func (l *Line) AnnotationType() pdf.Name {
	return "Line"
}

// Validate checks the line annotation for problems.
// This implements the [Annotation] interface.
func (l *Line) Validate(enact bool) (ErrorList, error) {
	var errs ErrorList
	errs = l.Common.validate(errs, l.AnnotationType())
	errs = l.Markup.validate(errs)

	if len(l.Points) < minLinePoints {
		errs = append(errs, &TooFewPointsError{Count: len(l.Points), Min: minLinePoints})
	}
	for i, x := range l.Points {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			errs = append(errs, &NonNumericPointError{Index: i, Value: x})
		}
	}
	for i, style := range l.LineEndingStyles {
		if style.Name() == "" {
			errs = append(errs, fmt.Errorf("invalid line ending style %s at index %d", style, i))
		}
	}

	if l.FillColor != nil {
		if err := color.Check(l.FillColor); err != nil {
			errs = append(errs, &ColorError{Key: "IC", Err: err})
		}
	}
	if math.IsNaN(l.LL) || math.IsInf(l.LL, 0) {
		errs = append(errs, &LeaderLineError{Key: "LL", Value: l.LL})
	}
	if !(l.LLE >= 0) || math.IsInf(l.LLE, 0) {
		errs = append(errs, &LeaderLineError{Key: "LLE", Value: l.LLE})
	}
	if !(l.LLO >= 0) || math.IsInf(l.LLO, 0) {
		errs = append(errs, &LeaderLineError{Key: "LLO", Value: l.LLO})
	}

	return errs.enact(enact)
}

func (l *Line) checkVersion(w *pdf.Writer) error {
	if err := pdf.CheckVersion(w, "line annotations", pdf.V1_3); err != nil {
		return err
	}
	if len(l.LineEndingStyles) > 0 {
		if err := pdf.CheckVersion(w, "line annotation LE entry", pdf.V1_4); err != nil {
			return err
		}
	}
	if l.FillColor != nil {
		if err := pdf.CheckVersion(w, "line annotation IC entry", pdf.V1_4); err != nil {
			return err
		}
	}
	if l.Caption {
		if err := pdf.CheckVersion(w, "line annotation Cap entry", pdf.V1_6); err != nil {
			return err
		}
	}
	if l.LL != 0 || l.LLE != 0 {
		if err := pdf.CheckVersion(w, "line annotation LL entry", pdf.V1_6); err != nil {
			return err
		}
	}
	if l.LLO != 0 {
		if err := pdf.CheckVersion(w, "line annotation LLO entry", pdf.V1_7); err != nil {
			return err
		}
	}
	return nil
}

// WriteAnnotationObject returns the encoded annotation dictionary.
// This implements the [Annotation] interface.
func (l *Line) WriteAnnotationObject(enc pdf.Encryptor) ([]byte, error) {
	n := len(l.Points)
	if n > 0 && n < minLinePoints {
		return nil, &TooFewPointsError{Count: n, Min: minLinePoints}
	}

	e := pdf.NewEncoder(enc, l.Ref)
	writeCommonEntries(e, l)
	writeMarkupEntries(e, &l.Markup)

	if n > 0 {
		if l.Subj == "" {
			e.Entry("Subj", pdf.String("Line"))
		}
		e.Entry("L", pdf.NumberArray(l.Points[:minLinePoints]...))
	}

	if len(l.LineEndingStyles) > 0 {
		styles := l.LineEndingStyles[:min(2, len(l.LineEndingStyles))]
		le := make(pdf.Array, len(styles))
		for i, style := range styles {
			name := style.Name()
			if name == "" {
				return nil, pdf.Error("invalid line ending style " + style.String())
			}
			le[i] = name
		}
		e.Entry("LE", le)
	}

	if l.FillColor != nil {
		e.Entry("IC", color.AsArray(l.FillColor))
	}
	if l.Caption {
		e.Entry("Cap", pdf.Bool(true))
	}
	if l.LL != 0 || l.LLE != 0 {
		e.Entry("LL", pdf.Number(l.LL))
	}
	if l.LLE != 0 {
		e.Entry("LLE", pdf.Number(l.LLE))
	}
	if l.LLO != 0 {
		e.Entry("LLO", pdf.Number(l.LLO))
	}

	e.EndDict()
	return e.Bytes()
}
