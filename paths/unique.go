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

package paths

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/mk2panel/version"
)

// UniqueFilename returns a filename in the current directory made from the
// application name, the label and the current time. Whitespace in the label
// is replaced by underscores. An empty label or extension is omitted.
//
// If a file with that name already exists a counter is added to the name.
//
//	mk2panel_screenshot_20261019_142501.png
//	mk2panel_screenshot_20261019_142501_2.png
func UniqueFilename(label string, ext string) string {
	parts := []string{version.ApplicationName}
	if l := strings.Join(strings.Fields(label), "_"); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, time.Now().Format("20060102_150405"))
	base := strings.Join(parts, "_")

	ext = strings.TrimPrefix(ext, ".")
	name := func(s string) string {
		if ext == "" {
			return s
		}
		return fmt.Sprintf("%s.%s", s, ext)
	}

	fn := name(base)
	for n := 2; exists(fn); n++ {
		fn = name(fmt.Sprintf("%s_%d", base, n))
	}

	return fn
}

func exists(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil
}
