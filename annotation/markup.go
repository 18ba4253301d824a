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
	"time"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// PDF 2.0 sections: 12.5.6.2

// Markup contains fields common to all markup annotations.
type Markup struct {
	// T (optional; PDF 1.1) is the text label that is displayed in the
	// title bar of the annotation's popup window.  This entry identifies
	// the user who added the annotation.
	T string

	// Subj (optional; PDF 1.5) is the subject of the annotation.
	// For line annotations, the subject defaults to "Line".
	Subj string

	// CreationDate (optional; PDF 1.5) is the date and time when the
	// annotation was created.
	CreationDate time.Time

	// IRT (required if RT is present; PDF 1.5) is a reference to the
	// annotation that this annotation is "in reply to".
	IRT pdf.Reference

	// RT (optional; PDF 1.6) specifies the relationship between this
	// annotation and the annotation specified by IRT. Valid values are
	// "R" (Reply) and "Group".  Default value: "R".
	RT pdf.Name

	// IT (optional; PDF 1.6) describes the intent of the markup annotation.
	// Valid values vary by annotation type.
	IT pdf.Name
}

// GetMarkup returns the markup annotation fields.
func (m *Markup) GetMarkup() *Markup {
	return m
}

func (m *Markup) validate(errs ErrorList) ErrorList {
	if m.RT != "" && m.IRT == 0 {
		errs = append(errs, pdf.Error("markup annotation RT entry without IRT"))
	}
	if m.RT != "" && m.RT != "R" && m.RT != "Group" {
		errs = append(errs, pdf.Error("invalid markup annotation RT entry "+string(m.RT)))
	}
	return errs
}

func (m *Markup) checkVersion(w *pdf.Writer) error {
	if m.T != "" {
		if err := pdf.CheckVersion(w, "markup annotation T entry", pdf.V1_1); err != nil {
			return err
		}
	}
	if !m.CreationDate.IsZero() {
		if err := pdf.CheckVersion(w, "markup annotation CreationDate entry", pdf.V1_5); err != nil {
			return err
		}
	}
	if m.IRT != 0 {
		if err := pdf.CheckVersion(w, "markup annotation IRT entry", pdf.V1_5); err != nil {
			return err
		}
	}
	if m.Subj != "" {
		if err := pdf.CheckVersion(w, "markup annotation Subj entry", pdf.V1_5); err != nil {
			return err
		}
	}
	if m.RT != "" {
		if err := pdf.CheckVersion(w, "markup annotation RT entry", pdf.V1_6); err != nil {
			return err
		}
	}
	if m.IT != "" {
		if err := pdf.CheckVersion(w, "markup annotation IT entry", pdf.V1_6); err != nil {
			return err
		}
	}
	return nil
}

// writeMarkupEntries adds the entries shared by all markup annotations.
// This must be called after writeCommonEntries.
func writeMarkupEntries(e *pdf.Encoder, m *Markup) {
	if m.T != "" {
		e.Entry("T", pdf.TextString(m.T))
	}
	if m.Subj != "" {
		e.Entry("Subj", pdf.TextString(m.Subj))
	}
	if !m.CreationDate.IsZero() {
		e.Entry("CreationDate", pdf.Date(m.CreationDate))
	}
	if m.IRT != 0 {
		e.Entry("IRT", m.IRT)
	}
	if m.RT != "" {
		e.Entry("RT", m.RT)
	}
	if m.IT != "" {
		e.Entry("IT", m.IT)
	}
}
