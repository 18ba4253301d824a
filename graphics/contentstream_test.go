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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfmarkup/graphics/color"
	"seehuhn.de/go/pdfmarkup/pdf"
)

func TestContentStreamBytes(t *testing.T) {
	cs := &ContentStream{}
	obj := cs.AddBlock("Tx").AddObject()
	obj.SetExtGState("GS1")
	obj.SetStrokeColor(color.DeviceRGB(1, 0, 0.5))
	obj.SetFillColor(color.DeviceGray(0))
	obj.DrawLine(10, 10, 110.12345, 10, 2)

	out, err := cs.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	expected := "/Tx BMC\n" +
		"q\n" +
		"/GS1 gs\n" +
		"1 0 0.5 RG\n" +
		"0 g\n" +
		"2 w\n" +
		"10 10 m\n" +
		"110.123 10 l\n" +
		"S\n" +
		"Q\n" +
		"EMC\n"
	if d := cmp.Diff(expected, string(out)); d != "" {
		t.Errorf("content stream differs (-want +got):\n%s", d)
	}
}

func TestContentStreamNesting(t *testing.T) {
	cs := &ContentStream{}
	mc := cs.AddBlock("Tx")
	mc.AddObject().MoveTo(0, 0)
	mc.AddObject().LineTo(1, 1)
	cs.AddBlock("Artifact").AddObject().Stroke()

	out, err := cs.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	expected := "/Tx BMC\nq\n0 0 m\nQ\nq\n1 1 l\nQ\nEMC\n" +
		"/Artifact BMC\nq\nS\nQ\nEMC\n"
	if d := cmp.Diff(expected, string(out)); d != "" {
		t.Errorf("content stream differs (-want +got):\n%s", d)
	}

	var names []string
	for _, op := range cs.Operators() {
		names = append(names, op.Name)
	}
	if d := cmp.Diff([]string{"m", "l", "S"}, names); d != "" {
		t.Errorf("operators differ (-want +got):\n%s", d)
	}
}

func TestColorOperators(t *testing.T) {
	cases := []struct {
		c      color.Color
		stroke string
		fill   string
	}{
		{color.DeviceGray(0.5), "0.5 G\n", "0.5 g\n"},
		{color.DeviceRGB(0, 0, 1), "0 0 1 RG\n", "0 0 1 rg\n"},
		{color.DeviceCMYK(0, 0, 0, 1), "0 0 0 1 K\n", "0 0 0 1 k\n"},
	}
	for _, test := range cases {
		obj := &Object{}
		obj.SetStrokeColor(test.c)
		obj.SetFillColor(test.c)
		buf := &bytes.Buffer{}
		for _, op := range obj.Ops {
			if err := op.write(buf); err != nil {
				t.Fatal(err)
			}
		}
		if got := buf.String(); got != test.stroke+test.fill {
			t.Errorf("%s: got %q", test.c.Family(), got)
		}
	}
}

func TestNonFiniteOperand(t *testing.T) {
	cs := &ContentStream{}
	cs.AddBlock("Tx").AddObject().MoveTo(math.NaN(), 0)
	_, err := cs.Bytes()
	if err == nil {
		t.Error("NaN operand accepted")
	}
}

type counter struct {
	next uint32
}

func (c *counter) Alloc() (pdf.Reference, error) {
	c.next++
	return pdf.NewReference(c.next, 0), nil
}

func TestExtGState(t *testing.T) {
	gs, err := NewExtGState(&counter{}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if gs.Reference() != pdf.NewReference(1, 0) {
		t.Errorf("wrong reference %s", gs.Reference())
	}
	out, err := gs.WriteObject(nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := "<<\n/CA 0.5\n/Type /ExtGState\n/ca 0.5\n>>"
	if string(out) != expected {
		t.Errorf("got %q, expected %q", out, expected)
	}

	for _, alpha := range []float64{-0.1, 1.5, math.NaN()} {
		if _, err := NewExtGState(&counter{}, alpha); err == nil {
			t.Errorf("opacity %g accepted", alpha)
		}
	}
}
