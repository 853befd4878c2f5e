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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is retained and can be checked with the Is() and Has()
// functions. Sentinel errors are therefore expressed as exported pattern
// strings:
//
//	const WrongDimensions = "assets: image is %dx%d, expected %dx%d"
//
//	err := curated.Errorf(WrongDimensions, w, h, ew, eh)
//	if curated.Is(err, assets.WrongDimensions) {
//		...
//	}
//
// Has() checks whether the pattern appears anywhere in the chain of curated
// errors, where the chain is made up of the curated errors used as values for
// the placeholders of the outer error.
//
// The Error() function normalises the message so that duplicate adjacent
// parts of the chain are removed. For example, the following:
//
//	e := curated.Errorf("panel: %v", curated.Errorf("panel: no surface"))
//
// prints as "panel: no surface" and not "panel: panel: no surface". Parts of
// the chain are separated by the sub-string ": ".
package curated
