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

// Package prefs facilitates the storage of preferential values. The Bool,
// Int, String and Float types are safe to read and write from different
// goroutines.
//
// Values can be associated with a Disk, which stores them in a file as a
// list of "key :: value" lines:
//
//	var ink prefs.String
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("lcd.ink", &ink)
//	err = dsk.Load()
//
// Each type can have a pre hook and a post hook. The pre hook is called with
// the new value before it is stored and can reject the value by returning an
// error. The post hook is called after the value has been stored.
//
// Values can also be specified on the command line. The command line stack
// holds values that take precedence over the values loaded from disk, in the
// form of a prefs string:
//
//	lcd.ink::#101010; lcd.backink::#2040a0
package prefs
