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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
)

// An Allocator hands out object references which are unique within one
// PDF file.  References are never reused.
type Allocator interface {
	Alloc() (Reference, error)
}

// Indirect is implemented by objects which are written to the PDF file as
// numbered indirect objects.  The reference is fixed when the object is
// created; WriteObject returns the object body, with strings and streams
// encrypted for that reference.
type Indirect interface {
	Reference() Reference
	WriteObject(enc Encryptor) ([]byte, error)
}

// WriterOptions configures a [Writer].
type WriterOptions struct {
	// Version is the PDF version of the output.
	// If this is zero, PDF 1.7 is used.
	Version Version

	// Encryptor (optional) encrypts strings and streams.
	Encryptor Encryptor

	// FirstObject is the first object number handed out by Alloc.
	// If this is zero, numbering starts at 1.
	FirstObject uint32
}

// Writer writes indirect object records to an io.Writer.
//
// The Writer only frames and positions the objects.  Assembling a complete
// file, including the header, page tree, cross-reference table and trailer,
// is the responsibility of the caller; [Writer.Offsets] provides the
// information needed for the cross-reference section.
type Writer struct {
	w   io.Writer
	pos int64

	ver     Version
	enc     Encryptor
	nextRef uint32

	offsets map[Reference]int64
}

// NewWriter returns a new Writer which writes to w.
// If opt is nil, default options are used.
func NewWriter(w io.Writer, opt *WriterOptions) *Writer {
	if opt == nil {
		opt = &WriterOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_7
	}
	first := opt.FirstObject
	if first == 0 {
		first = 1
	}
	return &Writer{
		w:       w,
		ver:     ver,
		enc:     opt.Encryptor,
		nextRef: first,
		offsets: make(map[Reference]int64),
	}
}

// Version returns the PDF version of the output.
func (pdf *Writer) Version() Version {
	return pdf.ver
}

// Encryptor returns the encryptor used for the output, or nil if the output
// is not encrypted.
func (pdf *Writer) Encryptor() Encryptor {
	return pdf.enc
}

// Alloc allocates an object number for an indirect object.
// This implements the [Allocator] interface.
func (pdf *Writer) Alloc() (Reference, error) {
	if pdf.nextRef == math.MaxUint32 {
		return 0, errRefsExhausted
	}
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref, nil
}

var errRefsExhausted = errors.New("no more object numbers available")

// Write writes obj as an indirect object.
func (pdf *Writer) Write(obj Indirect) error {
	ref := obj.Reference()
	if ref == 0 {
		return Error("indirect object without reference")
	}
	if _, seen := pdf.offsets[ref]; seen {
		return fmt.Errorf("object %s already written", ref)
	}

	body, err := obj.WriteObject(pdf.enc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ref, err)
	}

	pos := pdf.pos
	err = pdf.writef("%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	err = pdf.write(body)
	if err != nil {
		return err
	}
	err = pdf.write([]byte("\nendobj\n"))
	if err != nil {
		return err
	}
	pdf.offsets[ref] = pos

	Logger().Debug("object written",
		slog.Uint64("number", uint64(ref.Number())),
		slog.Int("length", len(body)))
	return nil
}

// Offsets returns the byte offsets of all objects written so far, relative
// to the start of the output.
func (pdf *Writer) Offsets() map[Reference]int64 {
	return maps.Clone(pdf.offsets)
}

func (pdf *Writer) writef(format string, args ...any) error {
	return pdf.write(fmt.Appendf(nil, format, args...))
}

func (pdf *Writer) write(p []byte) error {
	n, err := pdf.w.Write(p)
	pdf.pos += int64(n)
	return err
}
