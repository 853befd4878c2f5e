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

package main

import (
	"fmt"

	"github.com/jetsetilly/mk2panel/compositor"
	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/limiter"
	"github.com/jetsetilly/mk2panel/prefs"
)

// settings for a session. they are stored in the same file as the display
// preferences of the panel
type settings struct {
	// refresh rate of the panel and the emulation worker
	fps prefs.Int

	// whether the panel is enabled at the start of the session
	powerOn prefs.Bool

	// scaling applied to screenshots
	screenshotScale prefs.Float
}

const (
	defaultFPS             = 60
	defaultPowerOn         = true
	defaultScreenshotScale = 1.0
)

func newSettings() *settings {
	set := &settings{}

	set.fps.SetHookPre(func(v prefs.Value) error {
		if fps := v.(int); fps <= 0 {
			return curated.Errorf(limiter.InvalidRate, fps)
		}
		return nil
	})

	set.screenshotScale.SetHookPre(func(v prefs.Value) error {
		if scale := v.(float64); scale <= 0 {
			return curated.Errorf(compositor.InvalidScale, scale)
		}
		return nil
	})

	set.setDefaults()

	return set
}

func (set *settings) String() string {
	return fmt.Sprintf("fps: %s, poweron: %s, screenshot scale: %s", set.fps.String(), set.powerOn.String(), set.screenshotScale.String())
}

func (set *settings) setDefaults() {
	_ = set.fps.Set(defaultFPS)
	_ = set.powerOn.Set(defaultPowerOn)
	_ = set.screenshotScale.Set(defaultScreenshotScale)
}

func (set *settings) register(dsk *prefs.Disk) error {
	if err := dsk.Add("panel.fps", &set.fps); err != nil {
		return err
	}
	if err := dsk.Add("panel.poweron", &set.powerOn); err != nil {
		return err
	}
	if err := dsk.Add("screenshot.scale", &set.screenshotScale); err != nil {
		return err
	}
	return nil
}

func (set *settings) refreshRate() int {
	return set.fps.Get().(int)
}

func (set *settings) enabled() bool {
	return set.powerOn.Get().(bool)
}

func (set *settings) scale() float64 {
	return set.screenshotScale.Get().(float64)
}

// patterns of errors in the preferences file that are logged and otherwise
// ignored. the preference keeps its previous value
var recoverablePrefs = []string{
	compositor.InvalidColour,
	compositor.InvalidScale,
	limiter.InvalidRate,
}

func isRecoverablePref(err error) bool {
	for _, p := range recoverablePrefs {
		if curated.Has(err, p) {
			return true
		}
	}
	return false
}
