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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfmarkup/graphics"
	"seehuhn.de/go/pdfmarkup/graphics/color"
	"seehuhn.de/go/pdfmarkup/graphics/form"
	"seehuhn.de/go/pdfmarkup/pdf"
)

// Parameters of the open arrow line ending.  The head length refers to a
// line width of 2 and scales linearly with the line width.
const (
	arrowHeadLength    = 18
	arrowHalfSpread    = 30 * math.Pi / 180
	arrowRefLineWidth  = 2
	opacityExtGState   = pdf.Name("GParameters")
	appearanceBlockTag = pdf.Name("Tx")
)

var errNoAllocator = pdf.Error("annotation has no allocator")

// CreateDefaultAppearanceStream draws the line, together with any open arrow
// line endings, into a new Form XObject and installs it as the normal
// appearance of the annotation.  If Rect is unset, it is first fitted to the
// geometry using [Line.FitRect].
//
// This implements the [Annotation] interface.
func (l *Line) CreateDefaultAppearanceStream() error {
	c := &l.Common
	if c.alloc == nil {
		return errNoAllocator
	}
	if len(l.Points) < minLinePoints {
		return &TooFewPointsError{Count: len(l.Points), Min: minLinePoints}
	}
	if c.Rect.IsZero() {
		l.FitRect()
	}
	lw := c.Border.width()

	f, err := form.New(c.alloc, c.Rect)
	if err != nil {
		return allocFailed(err)
	}
	obj := f.Content.AddBlock(appearanceBlockTag).AddObject()

	if c.Opacity != 1 {
		gs, err := graphics.NewExtGState(c.alloc, c.Opacity)
		if err != nil {
			return allocFailed(err)
		}
		f.Resources = &pdf.Resources{}
		f.Resources.AddExtGState(opacityExtGState, gs.Ref)
		obj.SetExtGState(opacityExtGState)
		c.AdditionalObjects = append(c.AdditionalObjects, gs)
	}

	col := c.Color
	if col == nil {
		col = color.Black
	}
	obj.SetStrokeColor(col)
	obj.SetFillColor(col)

	p1, p2 := l.endPoints()
	obj.DrawLine(p1.X, p1.Y, p2.X, p2.Y, lw)

	for i, style := range l.endingStyles() {
		tip, from := p1, p2
		if i == 1 {
			tip, from = p2, p1
		}
		switch style {
		case LineEndingNone:
			// nothing to draw
		case LineEndingOpenArrow:
			w1, w2 := openArrowWings(tip, from, lw)
			obj.DrawLine(tip.X, tip.Y, w1.X, w1.Y, lw)
			obj.DrawLine(tip.X, tip.Y, w2.X, w2.Y, lw)
		default:
			pdf.Logger().Debug("line ending not drawn",
				slog.String("style", style.String()),
				slog.Int("index", i))
		}
	}

	c.AdditionalObjects = append(c.AdditionalObjects, f)
	if c.Appearance == nil {
		c.Appearance = &AppearanceDict{}
	}
	c.Appearance.Normal = f.Ref

	pdf.Logger().Debug("default appearance synthesized",
		slog.String("annotation", c.Ref.String()),
		slog.String("form", f.Ref.String()),
		slog.Int("operators", len(obj.Ops)))
	return nil
}

func allocFailed(err error) error {
	pdf.Logger().Warn("allocating appearance objects failed", slog.Any("error", err))
	return fmt.Errorf("default appearance: %w", err)
}

// endPoints returns the start and end point of the line.
// The caller must ensure that l.Points has at least four entries.
func (l *Line) endPoints() (vec.Vec2, vec.Vec2) {
	p1 := vec.Vec2{X: l.Points[0], Y: l.Points[1]}
	p2 := vec.Vec2{X: l.Points[2], Y: l.Points[3]}
	return p1, p2
}

// endingStyles returns the styles for the start and end point, as far as
// given.
func (l *Line) endingStyles() []LineEndingStyle {
	return l.LineEndingStyles[:min(2, len(l.LineEndingStyles))]
}

// openArrowWings returns the end points of the two strokes which form an
// open arrow at tip, for a line coming from the direction of from.
func openArrowWings(tip, from vec.Vec2, lw float64) (vec.Vec2, vec.Vec2) {
	d := tip.Sub(from)
	angle := math.Atan2(d.Y, d.X)
	length := arrowHeadLength * lw / arrowRefLineWidth

	w1 := tip.Sub(vec.Vec2{
		X: math.Cos(angle - arrowHalfSpread),
		Y: math.Sin(angle - arrowHalfSpread),
	}.Mul(length))
	w2 := tip.Sub(vec.Vec2{
		X: math.Cos(angle + arrowHalfSpread),
		Y: math.Sin(angle + arrowHalfSpread),
	}.Mul(length))
	return w1, w2
}

// GeometryBBox returns the smallest rectangle which contains the default
// appearance of the line, including half the line width on every side.
// The zero rectangle is returned if fewer than four coordinates are set.
func (l *Line) GeometryBBox() pdf.Rectangle {
	if len(l.Points) < minLinePoints {
		return pdf.Rectangle{}
	}
	lw := l.Border.width()

	p1, p2 := l.endPoints()
	pts := []vec.Vec2{p1, p2}
	for i, style := range l.endingStyles() {
		if style != LineEndingOpenArrow {
			continue
		}
		tip, from := p1, p2
		if i == 1 {
			tip, from = p2, p1
		}
		w1, w2 := openArrowWings(tip, from, lw)
		pts = append(pts, w1, w2)
	}

	bbox := pdf.Rectangle{
		LLx: pts[0].X, LLy: pts[0].Y,
		URx: pts[0].X, URy: pts[0].Y,
	}
	for _, p := range pts[1:] {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}
	bbox.LLx -= lw / 2
	bbox.LLy -= lw / 2
	bbox.URx += lw / 2
	bbox.URy += lw / 2
	return bbox
}

// FitRect sets Rect to the bounding box of the line geometry.
func (l *Line) FitRect() {
	l.Rect = l.GeometryBBox()
}
