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

// Package compositor turns a snapshot of the LCD controller into an image of
// the SC-55mkII front panel.
//
// The frame is built from the panel background with the characters in the
// controller's display data drawn over it. The panel has two types of
// character cell. Standard cells are used for the part, instrument and
// parameter readouts. Level cells are the much larger cells used for the
// level meter. The position of every cell on the panel is given by the
// tables in layout.go.
//
// Characters with codes below 16 are taken from the controller's character
// generator RAM. All other codes are taken from the font ROM.
package compositor
