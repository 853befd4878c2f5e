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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/mk2panel/userinput"
)

// Frames is a presentation surface that computes a chained hash of every frame
// presented to it.
type Frames struct {
	digest    [sha1.Size]byte
	pixels    []byte
	numFrames int

	// events waiting to be collected by the panel
	events []userinput.Event
}

// the alpha channel is not included in the digest
const pixelDepth = 3

// NewFrames is the preferred method of initialisation for the Frames type.
func NewFrames() *Frames {
	return &Frames{}
}

func (dig *Frames) String() string {
	return fmt.Sprintf("%d frames: %s", dig.numFrames, dig.Hash())
}

// Hash implements the Digest interface.
func (dig *Frames) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Frames) ResetDigest() {
	clear(dig.digest[:])
	dig.numFrames = 0
}

// NumFrames returns the number of frames included in the digest.
func (dig *Frames) NumFrames() int {
	return dig.numFrames
}

// Present implements the panel.Surface interface.
func (dig *Frames) Present(frame *image.RGBA) error {
	b := frame.Bounds()

	// length of pixels array contains enough room for the previous frame's
	// digest value
	l := len(dig.digest) + b.Dx()*b.Dy()*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := frame.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			dig.pixels[i] = frame.Pix[o]
			dig.pixels[i+1] = frame.Pix[o+1]
			dig.pixels[i+2] = frame.Pix[o+2]
			i += pixelDepth
			o += 4
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.numFrames++

	return nil
}

// QueueEvent adds an event to be returned by the next call to Events().
func (dig *Frames) QueueEvent(ev userinput.Event) {
	dig.events = append(dig.events, ev)
}

// Events implements the panel.Surface interface.
func (dig *Frames) Events() []userinput.Event {
	ev := dig.events
	dig.events = nil
	return ev
}

// Destroy implements the panel.Surface interface.
func (dig *Frames) Destroy() {
	dig.pixels = nil
}
