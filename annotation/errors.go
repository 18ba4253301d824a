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
	"strings"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// ErrorList collects the problems found while validating an annotation.
//
// The list implements the error interface.  Since ErrorList has an
// Unwrap() []error method, errors.Is and errors.As can be used to look
// for specific problems.
type ErrorList []error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	msg := make([]string, len(l))
	for i, err := range l {
		msg[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(l), strings.Join(msg, "; "))
}

// Unwrap returns the errors in the list.
func (l ErrorList) Unwrap() []error {
	return l
}

// enact returns the list together with the value to use as the error
// result of a Validate method.
func (l ErrorList) enact(enact bool) (ErrorList, error) {
	if enact && len(l) > 0 {
		return l, l
	}
	return l, nil
}

// InvalidAnnotationTypeError indicates that an annotation does not carry
// the subtype tag of its Go type.  This happens for annotations which
// were not created by the corresponding constructor.
type InvalidAnnotationTypeError struct {
	Got, Want pdf.Name
}

func (err *InvalidAnnotationTypeError) Error() string {
	return fmt.Sprintf("invalid annotation type %q, expected %q", err.Got, err.Want)
}

// TooFewPointsError indicates that the coordinate list of an annotation
// has fewer entries than required.
type TooFewPointsError struct {
	Count int
	Min   int
}

func (err *TooFewPointsError) Error() string {
	return fmt.Sprintf("%d coordinates given, at least %d needed", err.Count, err.Min)
}

// NonNumericPointError indicates that a coordinate is NaN or infinite.
type NonNumericPointError struct {
	Index int
	Value float64
}

func (err *NonNumericPointError) Error() string {
	return fmt.Sprintf("coordinate %d is not a number: %g", err.Index, err.Value)
}

// OpacityRangeError indicates an opacity value outside the range [0, 1].
type OpacityRangeError struct {
	Value float64
}

func (err *OpacityRangeError) Error() string {
	return fmt.Sprintf("opacity %g out of range [0, 1]", err.Value)
}

// ColorError indicates an invalid colour in the given annotation entry.
type ColorError struct {
	Key pdf.Name
	Err error
}

func (err *ColorError) Error() string {
	return fmt.Sprintf("invalid /%s colour: %v", err.Key, err.Err)
}

func (err *ColorError) Unwrap() error {
	return err.Err
}

// BorderWidthError indicates a negative or non-finite border width.
type BorderWidthError struct {
	Width float64
}

func (err *BorderWidthError) Error() string {
	return fmt.Sprintf("invalid border width %g", err.Width)
}

// LeaderLineError indicates an invalid leader line length.
type LeaderLineError struct {
	Key   pdf.Name
	Value float64
}

func (err *LeaderLineError) Error() string {
	return fmt.Sprintf("invalid /%s value %g", err.Key, err.Value)
}
