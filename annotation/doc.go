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

// Package annotation models PDF markup annotations and writes them as
// indirect objects.
//
// Annotations are created by constructors like [NewLine], which allocate the
// object reference of the annotation dictionary.  After the fields are
// filled in, [Write] validates the annotation, generates a default
// appearance stream if none was set, and writes the annotation dictionary
// together with all auxiliary objects.
//
// Validation collects all problems into an [ErrorList] instead of stopping
// at the first one:
//
//	errs, _ := line.Validate(false)
//	for _, err := range errs {
//		fmt.Println(err)
//	}
package annotation
