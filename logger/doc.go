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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string. The tag is usually the name of the package or
// component making the entry:
//
//	logger.Log(logger.Allow, "panel", "background loaded")
//	logger.Logf(logger.Allow, "transcript", "%d writes at tick %d", n, tick)
//
// The number of entries is bounded. Repeated entries are folded into the
// previous entry rather than added.
package logger
