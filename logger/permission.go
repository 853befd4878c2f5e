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

package logger

// Permission implementations decide whether a log request creates a new
// entry. The panel is a Permission, allowing logging only while it is
// enabled.
type Permission interface {
	AllowLogging() bool
}

// fixed permission that does not change over the lifetime of the program
type fixed bool

func (f fixed) AllowLogging() bool {
	return bool(f)
}

// Allow permits every log request.
var Allow Permission = fixed(true)

