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

package panel

import (
	"image"

	"github.com/jetsetilly/mk2panel/userinput"
)

// Surface is the interface to the presentation layer of the panel. For
// example, a window on the desktop.
type Surface interface {
	// Present the frame. The image must not be retained after the function
	// returns
	Present(frame *image.RGBA) error

	// Events returns all input events that have occurred since the previous
	// call to Events()
	Events() []userinput.Event

	// Destroy releases all resources held by the surface
	Destroy()
}

// SurfaceCreator is called by Initialise() to create the Surface.
type SurfaceCreator func() (Surface, error)
