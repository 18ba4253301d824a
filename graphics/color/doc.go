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

// Package color implements the device colors which can be used in
// annotation dictionaries and in annotation appearance streams.
//
//   - [DeviceGray]: grayscale colors, e.g. DeviceGray(0.5)
//   - [DeviceRGB]: RGB colors, e.g. DeviceRGB(1, 0, 0)
//   - [DeviceCMYK]: CMYK colors, e.g. DeviceCMYK(1, 0, 0, 0)
//
// In annotation dictionaries, the color space is identified by the number
// of components, see [AsArray].
package color
