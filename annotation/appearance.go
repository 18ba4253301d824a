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

import "seehuhn.de/go/pdfmarkup/pdf"

// PDF 2.0 sections: 12.5.5

// AppearanceDict represents an annotation appearance dictionary.
// The fields are references to Form XObjects.
type AppearanceDict struct {
	// Normal is the annotation's normal appearance.
	Normal pdf.Reference

	// RollOver (optional) is the annotation's rollover appearance.
	// Default: the value of Normal.
	RollOver pdf.Reference

	// Down (optional) is the annotation's down appearance.
	// Default: the value of Normal.
	Down pdf.Reference
}

// AsDict returns the appearance dictionary.
func (d *AppearanceDict) AsDict() pdf.Dict {
	dict := pdf.Dict{
		"N": d.Normal,
	}
	if d.RollOver != 0 {
		dict["R"] = d.RollOver
	}
	if d.Down != 0 {
		dict["D"] = d.Down
	}
	return dict
}
