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

package color

import (
	"errors"
	"math"

	"seehuhn.de/go/pdfmarkup/pdf"
)

// Color represents a colour in one of the device colour spaces.
type Color interface {
	// Family returns the name of the colour space, for example /DeviceRGB.
	Family() pdf.Name

	// Values returns the colour components.
	Values() []float64

	// Operators returns the content stream operators which set the colour
	// for stroking and for non-stroking operations.
	Operators() (stroke, fill string)
}

// Names of the device colour spaces.
const (
	FamilyDeviceGray pdf.Name = "DeviceGray"
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
)

// Black is black in the DeviceGray colour space.
var Black Color = DeviceGray(0)

// == DeviceGray =============================================================

type colorDeviceGray float64

// DeviceGray returns a color in the DeviceGray color space.
// The parameter gray must be in the range from 0 (black) to 1 (white).
func DeviceGray(gray float64) Color {
	return colorDeviceGray(gray)
}

func (c colorDeviceGray) Family() pdf.Name { return FamilyDeviceGray }

func (c colorDeviceGray) Values() []float64 { return []float64{float64(c)} }

func (c colorDeviceGray) Operators() (string, string) { return "G", "g" }

// == DeviceRGB ==============================================================

type colorDeviceRGB [3]float64

// DeviceRGB returns a color in the DeviceRGB color space.
// The parameters r, g, and b must be in the range from 0 to 1.
func DeviceRGB(r, g, b float64) Color {
	return colorDeviceRGB{r, g, b}
}

func (c colorDeviceRGB) Family() pdf.Name { return FamilyDeviceRGB }

func (c colorDeviceRGB) Values() []float64 { return c[:] }

func (c colorDeviceRGB) Operators() (string, string) { return "RG", "rg" }

// == DeviceCMYK =============================================================

type colorDeviceCMYK [4]float64

// DeviceCMYK returns a color in the DeviceCMYK color space.
// The parameters c, m, y, and k must be in the range from 0 to 1
// and control the amount of cyan, magenta, yellow, and black in the color.
func DeviceCMYK(c, m, y, k float64) Color {
	return colorDeviceCMYK{c, m, y, k}
}

func (c colorDeviceCMYK) Family() pdf.Name { return FamilyDeviceCMYK }

func (c colorDeviceCMYK) Values() []float64 { return c[:] }

func (c colorDeviceCMYK) Operators() (string, string) { return "K", "k" }

// ============================================================================

// Check verifies that all components of c are finite numbers in the
// range from 0 to 1.
func Check(c Color) error {
	for _, x := range c.Values() {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return errOutOfRange
		}
	}
	return nil
}

var errOutOfRange = errors.New("colour component out of range")

// AsArray returns the colour components as a PDF array, in the form used in
// annotation dictionaries.  The number of components identifies the colour
// space.
func AsArray(c Color) pdf.Array {
	return pdf.NumberArray(c.Values()...)
}
