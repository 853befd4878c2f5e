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

// Package digest is used to create hashes of the panel output.
//
// The Frames type is a headless presentation surface. Rather than displaying
// frames it chains the SHA-1 of each frame with the hash of the previous
// frame. Two runs of the same transcript with the same background produce the
// same hash and so the package is useful for regression testing.
package digest
