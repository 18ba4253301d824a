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

package graphics

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/pdfmarkup/graphics/color"
	"seehuhn.de/go/pdfmarkup/pdf"
)

// Operator is a single content stream operator together with its operands.
type Operator struct {
	Name string
	Args []pdf.Object
}

// ContentStream is a content stream, organised as a sequence of
// marked-content blocks.
type ContentStream struct {
	Blocks []*MarkedContent
}

// MarkedContent is a marked-content sequence containing graphic objects.
// It is written using the BMC and EMC operators.
type MarkedContent struct {
	// Tag specifies the role of the sequence, for example /Tx.
	Tag pdf.Name

	Objects []*Object
}

// Object is a graphic object, i.e. a sequence of operators which is
// enclosed in a save/restore pair (q and Q) when written.
type Object struct {
	Ops []Operator
}

// AddBlock appends a new marked-content block to the content stream.
func (cs *ContentStream) AddBlock(tag pdf.Name) *MarkedContent {
	mc := &MarkedContent{Tag: tag}
	cs.Blocks = append(cs.Blocks, mc)
	return mc
}

// AddObject appends a new graphic object to the block.
func (mc *MarkedContent) AddObject() *Object {
	obj := &Object{}
	mc.Objects = append(mc.Objects, obj)
	return obj
}

// Operators returns all operators of the content stream in the order
// they are written, excluding the structural operators BMC, EMC, q and Q.
func (cs *ContentStream) Operators() []Operator {
	var res []Operator
	for _, mc := range cs.Blocks {
		for _, obj := range mc.Objects {
			res = append(res, obj.Ops...)
		}
	}
	return res
}

// Bytes returns the serialized content stream.
func (cs *ContentStream) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	for _, mc := range cs.Blocks {
		err := mc.Tag.PDF(buf)
		if err != nil {
			return nil, err
		}
		buf.WriteString(" BMC\n")
		for _, obj := range mc.Objects {
			buf.WriteString("q\n")
			for _, op := range obj.Ops {
				err = op.write(buf)
				if err != nil {
					return nil, err
				}
			}
			buf.WriteString("Q\n")
		}
		buf.WriteString("EMC\n")
	}
	return buf.Bytes(), nil
}

func (op Operator) write(buf *bytes.Buffer) error {
	for _, arg := range op.Args {
		err := arg.PDF(buf)
		if err != nil {
			return fmt.Errorf("operator %q: %w", op.Name, err)
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(op.Name)
	buf.WriteByte('\n')
	return nil
}

func (obj *Object) addOp(name string, args ...pdf.Object) {
	obj.Ops = append(obj.Ops, Operator{Name: name, Args: args})
}

// coord converts a coordinate or length into an operand.
func coord(x float64) pdf.Object {
	return pdf.Number(pdf.Round(x, 3))
}

// SetExtGState sets graphics state parameters from the ExtGState resource
// with the given name.
//
// This implements the PDF graphics operator "gs".
func (obj *Object) SetExtGState(name pdf.Name) {
	obj.addOp("gs", name)
}

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (obj *Object) SetLineWidth(width float64) {
	obj.addOp("w", coord(width))
}

// SetStrokeColor sets the colour for stroking operations.
//
// This implements the PDF graphics operators "G", "RG" and "K".
func (obj *Object) SetStrokeColor(c color.Color) {
	op, _ := c.Operators()
	obj.addOp(op, colorArgs(c)...)
}

// SetFillColor sets the colour for non-stroking operations.
//
// This implements the PDF graphics operators "g", "rg" and "k".
func (obj *Object) SetFillColor(c color.Color) {
	_, op := c.Operators()
	obj.addOp(op, colorArgs(c)...)
}

func colorArgs(c color.Color) []pdf.Object {
	values := c.Values()
	args := make([]pdf.Object, len(values))
	for i, x := range values {
		args[i] = pdf.Number(pdf.Round(x, 3))
	}
	return args
}

// MoveTo starts a new subpath at the given point.
//
// This implements the PDF graphics operator "m".
func (obj *Object) MoveTo(x, y float64) {
	obj.addOp("m", coord(x), coord(y))
}

// LineTo appends a straight line segment to the current subpath.
//
// This implements the PDF graphics operator "l".
func (obj *Object) LineTo(x, y float64) {
	obj.addOp("l", coord(x), coord(y))
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (obj *Object) Stroke() {
	obj.addOp("S")
}

// DrawLine strokes the straight line from (x1, y1) to (x2, y2), using the
// given line width.
func (obj *Object) DrawLine(x1, y1, x2, y2, width float64) {
	obj.SetLineWidth(width)
	obj.MoveTo(x1, y1)
	obj.LineTo(x2, y2)
	obj.Stroke()
}
