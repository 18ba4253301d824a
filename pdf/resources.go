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

// Resources represents a resource dictionary, mapping the names used
// inside a content stream to the objects they refer to.
//
// Only graphics state parameter dictionaries are needed for annotation
// appearance streams.
type Resources struct {
	ExtGState map[Name]Reference
}

// AddExtGState registers a graphics state parameter dictionary under the
// given name.
func (r *Resources) AddExtGState(name Name, ref Reference) {
	if r.ExtGState == nil {
		r.ExtGState = make(map[Name]Reference)
	}
	r.ExtGState[name] = ref
}

// IsEmpty reports whether no resources have been registered.
func (r *Resources) IsEmpty() bool {
	return r == nil || len(r.ExtGState) == 0
}

// AsDict returns the resource dictionary.
// Empty categories are omitted.
func (r *Resources) AsDict() Dict {
	if r == nil {
		return nil
	}
	res := Dict{}
	if len(r.ExtGState) > 0 {
		d := make(Dict, len(r.ExtGState))
		for name, ref := range r.ExtGState {
			d[name] = ref
		}
		res["ExtGState"] = d
	}
	return res
}
