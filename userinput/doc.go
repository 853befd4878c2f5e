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

// Package userinput handles input from the real keyboard of the user and
// translates it into presses of the emulated front panel buttons.
//
// It can be thought of as a translation layer between the presentation
// surface and the hardware/buttons package. Surfaces convert their native
// events into the Event types defined here and the Bridge applies them to the
// buttons.Pressed bitmask.
//
// The surface used during development was SDL and so there is a bias towards
// that system. Key names are the names SDL gives to physical keys (scancodes)
// rather than to the symbols printed on them.
package userinput
