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
	"compress/zlib"
	"io"
	"maps"
	"strconv"
	"strings"
)

// Stream represent a stream object in a PDF file.
//
// The Length entry of the stream dictionary is filled in when the stream is
// written, after any encryption has been applied.
type Stream struct {
	Dict
	Data []byte
}

func (x *Stream) String() string {
	res := []string{}
	tp, ok := x.Dict["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Stream")
	} else {
		res = append(res, "Stream")
	}
	res = append(res, strconv.Itoa(len(x.Data))+" bytes")
	if filter, ok := x.Dict["Filter"].(Name); ok {
		res = append(res, string(filter))
	}
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	data := x.Data
	if e, ok := w.(*Encoder); ok && e.enc != nil {
		enc, err := e.enc.EncryptBytes(e.ref, bytes.Clone(data))
		if err != nil {
			return err
		}
		data = enc
	}

	dict := maps.Clone(x.Dict)
	if dict == nil {
		dict = Dict{}
	}
	dict["Length"] = Integer(len(data))
	err := dict.PDF(w)
	if err != nil {
		return err
	}

	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}

// Compress replaces the stream data by its zlib/deflate compressed form
// and sets the Filter entry to FlateDecode.
func (x *Stream) Compress() error {
	if _, isFiltered := x.Dict["Filter"]; isFiltered {
		return Error("stream is already filtered")
	}

	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	_, err := zw.Write(x.Data)
	if err != nil {
		return err
	}
	err = zw.Close()
	if err != nil {
		return err
	}

	if x.Dict == nil {
		x.Dict = Dict{}
	}
	x.Dict["Filter"] = Name("FlateDecode")
	x.Data = buf.Bytes()
	return nil
}
