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

// Package paths contains functions to prepare paths to mk2panel resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the default panel background.
//
//	pth, err := paths.ResourcePath("assets", "back.data")
//
// For development builds the base path is ".mk2panel" in the current
// directory. For release builds (the "release" build tag) the user's config
// directory is used, as returned by os.UserConfigDir(). In that case, on a
// modern Linux system, the path returned will be:
//
//	/home/user/.config/mk2panel/assets/back.data
//
// The directory part of the path is created if it does not exist.
package paths
