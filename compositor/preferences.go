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
	"fmt"
	"image/color"
	"strconv"

	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/prefs"
)

// Preferences for the appearance of the panel. Colours are strings of the
// form "#rrggbb".
type Preferences struct {
	// colour of lit dots
	Ink prefs.String

	// colour of unlit dots
	BackInk prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("ink: %s, backink: %s", p.Ink.String(), p.BackInk.String())
}

const (
	defaultInk     = "#000000"
	defaultBackInk = "#0050c8"
)

// InvalidColour is the error pattern for a colour string that cannot be
// parsed.
const InvalidColour = "compositor: invalid colour (%s)"

func newPreferences(cmp *Compositor) *Preferences {
	p := &Preferences{}

	validate := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}

	p.Ink.SetHookPre(validate)
	p.Ink.SetHookPost(func(v prefs.Value) error {
		col, _ := ParseColour(v.(string))
		cmp.ink.Store(pack(col))
		return nil
	})

	p.BackInk.SetHookPre(validate)
	p.BackInk.SetHookPost(func(v prefs.Value) error {
		col, _ := ParseColour(v.(string))
		cmp.backInk.Store(pack(col))
		return nil
	})

	p.SetDefaults()

	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Ink.Set(defaultInk)
	_ = p.BackInk.Set(defaultBackInk)
}

// Register the preferences with a prefs.Disk. Values from the command line
// stack are applied immediately.
func (p *Preferences) Register(dsk *prefs.Disk) error {
	if err := dsk.Add("lcd.ink", &p.Ink); err != nil {
		return err
	}
	if err := dsk.Add("lcd.backink", &p.BackInk); err != nil {
		return err
	}
	return nil
}

// ParseColour converts a string of the form "#rrggbb" to an opaque colour.
func ParseColour(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{A: 0xff}, curated.Errorf(InvalidColour, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}, curated.Errorf(InvalidColour, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
