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

// Package pdf implements the low-level object model used to write PDF
// annotations.
//
// The following types implement the native PDF object types.
// All of these implement the `pdf.Object` interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Number
//	Real
//	Reference
//	Stream
//	String
//
// Objects which stand alone in a PDF file implement [Indirect].  They are
// written using a [Writer], which frames each object as a numbered record
// and passes strings and streams through the [Encryptor], if any:
//
//	w := pdf.NewWriter(out, &pdf.WriterOptions{Version: pdf.V1_7})
//	ref, err := w.Alloc()
//	...
//	err = w.Write(obj)
//
// The file header, cross-reference table and trailer are left to the
// caller; [Writer.Offsets] and [StandardEncryptor.AsDict] provide the
// information needed to write them.
package pdf
