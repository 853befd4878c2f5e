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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and of allowing different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. The Parse() function returns a ParseResult which should
// be checked. Help is printed automatically when the -help flag is used.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "HEADLESS")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// The first sub-mode in the list is the default. If the first argument is not
// one of the sub-modes then the default is selected and the argument is left
// for the next call to Parse(). Mode names are not case sensitive.
//
// After the mode has been decided, NewMode() begins a new set of flags:
//
//	md.NewMode()
//	scale := md.AddInt("scale", 1, "window scale")
//	r, err := md.Parse()
//
// The Path() function returns the modes that have been selected so far,
// separated by a slash. For example, "HEADLESS".
package modalflag
