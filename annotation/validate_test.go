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
	"errors"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/pdfmarkup/pdf"
)

type counter struct {
	next uint32
}

func (c *counter) Alloc() (pdf.Reference, error) {
	c.next++
	return pdf.NewReference(c.next, 0), nil
}

func newTestLine(t *testing.T, points ...float64) *Line {
	t.Helper()
	l, err := NewLine(&counter{})
	if err != nil {
		t.Fatal(err)
	}
	l.Points = points
	return l
}

func TestValidateValid(t *testing.T) {
	cases := [][]float64{
		{0, 0, 100, 0},
		{10, 10, 110, 10},
		{-1.5, 2, 3, 1e10},
		{1, 2, 3, 4, 5, 6}, // extra entries are ignored
	}
	for _, points := range cases {
		l := newTestLine(t, points...)
		errs, err := l.Validate(false)
		if len(errs) != 0 || err != nil {
			t.Errorf("%v: unexpected problems %v", points, errs)
		}
		errs, err = l.Validate(true)
		if len(errs) != 0 || err != nil {
			t.Errorf("%v: unexpected problems %v", points, errs)
		}
	}
}

func TestValidateCounts(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		points      []float64
		tooFew      bool
		nonNumeric  []int
		totalErrors int
	}{
		{nil, true, nil, 1},
		{[]float64{1, 2}, true, nil, 1},
		{[]float64{1, nan}, true, []int{1}, 2},
		{[]float64{nan, 1, inf, 2}, false, []int{0, 2}, 2},
		{[]float64{nan, nan, nan}, true, []int{0, 1, 2}, 4},
		{[]float64{0, 0, 0, math.Inf(-1)}, false, []int{3}, 1},
	}
	for _, test := range cases {
		l := newTestLine(t, test.points...)
		errs, err := l.Validate(false)
		if err != nil {
			t.Errorf("%v: error returned without enact", test.points)
		}
		if len(errs) != test.totalErrors {
			t.Errorf("%v: got %d errors, expected %d: %v",
				test.points, len(errs), test.totalErrors, errs)
		}

		var tooFew *TooFewPointsError
		if errors.As(errs, &tooFew) != test.tooFew {
			t.Errorf("%v: wrong TooFewPointsError status", test.points)
		}

		var indices []int
		for _, e := range errs {
			var nonNum *NonNumericPointError
			if errors.As(e, &nonNum) {
				indices = append(indices, nonNum.Index)
			}
		}
		if len(indices) != len(test.nonNumeric) {
			t.Errorf("%v: non-numeric indices %v, expected %v",
				test.points, indices, test.nonNumeric)
			continue
		}
		for i := range indices {
			if indices[i] != test.nonNumeric[i] {
				t.Errorf("%v: non-numeric indices %v, expected %v",
					test.points, indices, test.nonNumeric)
				break
			}
		}
	}
}

func TestValidateEnact(t *testing.T) {
	l := newTestLine(t, 1, math.NaN())
	errs, err := l.Validate(true)
	if err == nil {
		t.Fatal("no error returned")
	}
	if len(errs) != 2 {
		t.Errorf("got %d errors", len(errs))
	}
	var list ErrorList
	if !errors.As(err, &list) || len(list) != 2 {
		t.Errorf("error is not the full error list: %v", err)
	}
	var nonNum *NonNumericPointError
	if !errors.As(err, &nonNum) || nonNum.Index != 1 {
		t.Errorf("NonNumericPointError not found in %v", err)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "2 errors: ") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestValidateSubtype(t *testing.T) {
	l := &Line{Points: []float64{0, 0, 1, 1}}
	errs, _ := l.Validate(false)
	var typeErr *InvalidAnnotationTypeError
	if len(errs) != 1 || !errors.As(errs, &typeErr) {
		t.Fatalf("expected invalid type error, got %v", errs)
	}
	if typeErr.Want != "Line" || typeErr.Got != "" {
		t.Errorf("wrong error %v", typeErr)
	}
}

func TestValidateFields(t *testing.T) {
	l := newTestLine(t, 0, 0, 10, 10)
	l.Opacity = 1.5
	l.LLE = -1
	l.LLO = math.NaN()
	l.Border = &BorderStyle{Width: -2}
	l.LineEndingStyles = []LineEndingStyle{LineEndingNone, LineEndingStyle(200)}

	errs, _ := l.Validate(false)
	if len(errs) != 5 {
		t.Errorf("got %d errors, expected 5: %v", len(errs), errs)
	}
	var opErr *OpacityRangeError
	if !errors.As(errs, &opErr) || opErr.Value != 1.5 {
		t.Error("missing OpacityRangeError")
	}
	var bwErr *BorderWidthError
	if !errors.As(errs, &bwErr) {
		t.Error("missing BorderWidthError")
	}
	var llErr *LeaderLineError
	if !errors.As(errs, &llErr) || llErr.Key != "LLE" {
		t.Error("missing LeaderLineError")
	}
}

func TestValidateMarkup(t *testing.T) {
	l := newTestLine(t, 0, 0, 10, 10)
	l.RT = "Group"
	errs, _ := l.Validate(false)
	if len(errs) != 1 {
		t.Errorf("RT without IRT: got %v", errs)
	}
	l.IRT = pdf.NewReference(9, 0)
	errs, _ = l.Validate(false)
	if len(errs) != 0 {
		t.Errorf("unexpected errors %v", errs)
	}
}

func TestErrorListMessage(t *testing.T) {
	var empty ErrorList
	if empty.Error() != "no errors" {
		t.Errorf("got %q", empty.Error())
	}
	single := ErrorList{&OpacityRangeError{Value: 2}}
	if single.Error() != "opacity 2 out of range [0, 1]" {
		t.Errorf("got %q", single.Error())
	}
}

func TestBorderStyle(t *testing.T) {
	b, err := NewBorderStyle(2, BorderDashed, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := pdf.Format(b.AsDict())
	expected := "<<\n/D [3 1]\n/S /D\n/Type /Border\n/W 2\n>>"
	if got != expected {
		t.Errorf("got %q, expected %q", got, expected)
	}

	b, err = NewBorderStyle(1, BorderSolid)
	if err != nil {
		t.Fatal(err)
	}
	if got := pdf.Format(b.AsDict()); got != "<<\n/Type /Border\n>>" {
		t.Errorf("default border style written as %q", got)
	}

	bad := []struct {
		width float64
		style BorderKind
		dash  []float64
	}{
		{-1, BorderSolid, nil},
		{math.NaN(), BorderSolid, nil},
		{1, BorderSolid, []float64{3}},
		{1, BorderDashed, []float64{-3}},
		{1, BorderDashed, []float64{0, 0}},
		{1, BorderKind(17), nil},
	}
	for _, test := range bad {
		_, err := NewBorderStyle(test.width, test.style, test.dash...)
		if err == nil {
			t.Errorf("invalid border style %v accepted", test)
		}
	}
}

func TestLineEndingNames(t *testing.T) {
	for s := LineEndingNone; s <= LineEndingSlash; s++ {
		name := s.Name()
		if name == "" {
			t.Errorf("style %d has no name", s)
		}
		s2, err := ParseLineEndingStyle(name)
		if err != nil || s2 != s {
			t.Errorf("%s: round trip failed", name)
		}
	}
	if _, err := ParseLineEndingStyle("Arrow"); err == nil {
		t.Error("unknown style accepted")
	}
	if LineEndingStyle(99).Name() != "" {
		t.Error("invalid style has a name")
	}
}
