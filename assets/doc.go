// This file is part of mk2panel.
//
// mk2panel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mk2panel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mk2panel.  If not, see <https://www.gnu.org/licenses/>.

// Package assets loads the image files used by the panel.
//
// The panel background is usually the raw pixel dump used by other SC-55mkII
// emulators. Raw files are 741x268 pixels, four bytes per pixel, in the order
// red, green, blue and an unused padding byte. A raw file that is too short is
// accepted and the missing pixels are left black.
//
// The background can also be a PNG, GIF, JPEG, BMP or TIFF image. These must
// have the exact dimensions of the panel.
package assets
