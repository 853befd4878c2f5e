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

// Package sdlpanel presents the panel in an SDL window.
//
// The window is the size of the panel image multiplied by the scale value
// given to NewSdlPanel(). The window can be resized and the panel image is
// stretched to fit, with the aspect ratio preserved.
//
// All functions must be called from the main thread. The main package locks
// the main goroutine to the main thread in its init() function.
package sdlpanel
