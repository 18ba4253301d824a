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

import (
	"bytes"
)

// An Encoder accumulates the serialized form of a single indirect object.
//
// Strings and streams written through an Encoder are passed through the
// Encryptor (if any), using the key for the object reference the Encoder
// was created for.  Errors are sticky: after the first failure all further
// writes are ignored and the error is reported by [Encoder.Bytes].
type Encoder struct {
	buf bytes.Buffer
	enc Encryptor
	ref Reference

	depth int
	err   error
}

// NewEncoder returns an Encoder for the object identified by ref.
// If enc is nil, no encryption is applied.
func NewEncoder(enc Encryptor, ref Reference) *Encoder {
	return &Encoder{
		enc: enc,
		ref: ref,
	}
}

// Reference returns the reference of the object being encoded.
func (e *Encoder) Reference() Reference {
	return e.ref
}

// Write appends raw bytes to the output.
// This implements the [io.Writer] interface.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.buf.Write(p)
}

// Object appends the PDF representation of obj.
func (e *Encoder) Object(obj Object) {
	if e.err != nil {
		return
	}
	e.err = writeObject(e, obj)
}

// BeginDict starts a dictionary.  Entries are added using [Encoder.Entry]
// and the dictionary is terminated by [Encoder.EndDict].
func (e *Encoder) BeginDict() {
	if e.err != nil {
		return
	}
	e.depth++
	e.buf.WriteString("<<")
}

// Entry appends a key/value pair to the current dictionary.
// Entries with a nil value are omitted.
func (e *Encoder) Entry(key Name, val Object) {
	if e.err != nil || val == nil {
		return
	}
	if e.depth == 0 {
		e.err = Error("dictionary entry outside of dictionary")
		return
	}
	e.buf.WriteByte('\n')
	e.err = key.PDF(e)
	if e.err != nil {
		return
	}
	e.buf.WriteByte(' ')
	e.err = val.PDF(e)
}

// EndDict terminates the dictionary started by [Encoder.BeginDict].
func (e *Encoder) EndDict() {
	if e.err != nil {
		return
	}
	if e.depth == 0 {
		e.err = Error("unbalanced dictionary end")
		return
	}
	e.depth--
	e.buf.WriteString("\n>>")
}

// Bytes returns the encoded object.
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.depth != 0 {
		return nil, Error("unterminated dictionary")
	}
	return e.buf.Bytes(), nil
}

// Marshal returns the encoding of obj as the content of the indirect
// object ref.
func Marshal(obj Object, enc Encryptor, ref Reference) ([]byte, error) {
	e := NewEncoder(enc, ref)
	e.Object(obj)
	return e.Bytes()
}
