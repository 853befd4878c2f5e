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

// Package termpanel presents the panel in a terminal that supports 24-bit
// colour ANSI sequences.
//
// Each character cell shows two pixels using the upper half block character,
// the foreground colour being the upper pixel and the background colour being
// the lower pixel. The panel image is scaled down to fit the number of
// columns given to NewTermPanel().
//
// The terminal is put into cbreak mode for the lifetime of the surface.
// Terminals do not report key releases so every key press is reported as a
// key down event followed by a key up event on the next call to Events().
package termpanel
