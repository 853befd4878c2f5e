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

package compositor

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/jetsetilly/mk2panel/curated"
	"golang.org/x/image/draw"
)

// InvalidScale is the error pattern for a screenshot scale that is zero or
// negative.
const InvalidScale = "screenshot: invalid scale (%v)"

// Screenshot writes the frame to w as a PNG image. The image is scaled by the
// scale value. Integer scales use nearest neighbour scaling so that the dots
// of the display stay sharp.
func Screenshot(frame *image.RGBA, scale float64, w io.Writer) error {
	if scale <= 0 {
		return curated.Errorf(InvalidScale, scale)
	}

	var img image.Image = frame

	if scale != 1.0 {
		b := frame.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))

		var scaler draw.Scaler = draw.CatmullRom
		if scale == math.Trunc(scale) {
			scaler = draw.NearestNeighbor
		}
		scaler.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
