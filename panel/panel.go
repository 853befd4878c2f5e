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

package panel

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/mk2panel/assert"
	"github.com/jetsetilly/mk2panel/assets"
	"github.com/jetsetilly/mk2panel/compositor"
	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/hardware/buttons"
	"github.com/jetsetilly/mk2panel/hardware/lcd"
	"github.com/jetsetilly/mk2panel/logger"
	"github.com/jetsetilly/mk2panel/userinput"
)

// Panel is the emulated front panel.
type Panel struct {
	// guards the LCD controller
	crit sync.Mutex
	ctrl *lcd.Controller

	cmp     *compositor.Compositor
	pressed buttons.Pressed
	bridge  *userinput.Bridge

	create         SurfaceCreator
	surface        Surface
	backgroundPath string
	initialised    bool

	// the goroutine that called Initialise(). the surface must only be used
	// from this goroutine
	owner uint64

	enabled atomic.Bool
	quit    atomic.Bool
}

// NewPanel is the preferred method of initialisation for the Panel type. The
// surface is not created until Initialise() is called. The panel is disabled
// until SetEnabled(true) is called.
func NewPanel(create SurfaceCreator) *Panel {
	pnl := &Panel{
		ctrl:   lcd.NewController(),
		cmp:    compositor.NewCompositor(),
		create: create,
	}
	pnl.bridge = userinput.NewBridge(&pnl.pressed)
	return pnl
}

func (pnl *Panel) String() string {
	return fmt.Sprintf("initialised=%v enabled=%v buttons=%s", pnl.initialised, pnl.enabled.Load(), pnl.pressed.String())
}

// Lock the LCD controller. Must be held by the emulation goroutine while
// calling Write().
func (pnl *Panel) Lock() {
	pnl.crit.Lock()
}

// Unlock the LCD controller.
func (pnl *Panel) Unlock() {
	pnl.crit.Unlock()
}

// Write to the LCD controller. A registerSelect value of zero is the
// instruction register. Any other value is the data register.
//
// Implements the lcd.Bus interface.
func (pnl *Panel) Write(registerSelect int, data uint8) {
	pnl.ctrl.Write(registerSelect, data)
}

// Reset the LCD controller to its power-on state. The caller must hold the
// lock.
func (pnl *Panel) Reset() {
	pnl.ctrl.Reset()
}

// Snapshot returns a copy of the LCD controller state. The lock is taken by
// the function and must not be held by the caller.
func (pnl *Panel) Snapshot() lcd.Snapshot {
	pnl.crit.Lock()
	defer pnl.crit.Unlock()
	return pnl.ctrl.Snapshot()
}

// SetBackgroundAssetPath sets the file used for the panel background. It
// must be called before Initialise(). An empty path means the panel has a
// plain black background.
func (pnl *Panel) SetBackgroundAssetPath(path string) {
	pnl.backgroundPath = path
}

// NoSurface is logged by Initialise() if the panel has no SurfaceCreator.
const NoSurface = "no surface"

// Initialise creates the surface and loads the background. Returns false if
// either fails, in which case the panel remains uninitialised and the error
// is logged. Calling Initialise() on an initialised panel has no effect.
func (pnl *Panel) Initialise() bool {
	if pnl.initialised {
		return true
	}

	pnl.quit.Store(false)

	if pnl.create == nil {
		logger.Log(logger.Allow, "panel", curated.Errorf(NoSurface))
		return false
	}

	surface, err := pnl.create()
	if err != nil {
		logger.Log(logger.Allow, "panel", err)
		return false
	}

	var bg *image.RGBA
	if pnl.backgroundPath != "" {
		bg, err = assets.LoadBackground(pnl.backgroundPath)
		if err != nil {
			surface.Destroy()
			logger.Log(logger.Allow, "panel", err)
			return false
		}
		logger.Logf(logger.Allow, "panel", "background loaded from %s", pnl.backgroundPath)
	} else {
		logger.Log(logger.Allow, "panel", "no background specified")
	}

	pnl.cmp.SetBackground(bg)
	pnl.surface = surface
	pnl.initialised = true
	pnl.owner = assert.GoroutineID()

	return true
}

// Shutdown destroys the surface. The panel can be initialised again.
func (pnl *Panel) Shutdown() {
	if !pnl.initialised {
		return
	}
	pnl.surface.Destroy()
	pnl.surface = nil
	pnl.initialised = false
}

// IsInitialised returns true if Initialise() has completed successfully.
func (pnl *Panel) IsInitialised() bool {
	return pnl.initialised
}

// Render composites and presents a single frame and then processes pending
// input events. Does nothing if the panel has not been initialised.
func (pnl *Panel) Render() {
	if !pnl.initialised {
		return
	}

	if id := assert.GoroutineID(); id != pnl.owner {
		logger.Logf(logger.Allow, "panel", "render from goroutine %d (initialised in %d)", id, pnl.owner)
	}

	snap := pnl.Snapshot()
	pnl.cmp.Composite(snap, pnl.enabled.Load())

	if err := pnl.surface.Present(pnl.cmp.Frame()); err != nil {
		logger.Log(logger.Allow, "panel", err)
	}

	if pnl.bridge.HandleAll(pnl.surface.Events()) {
		pnl.quit.Store(true)
	}
}

// Frame returns the most recently rendered frame. The image is reused by the
// next call to Render() and must only be used from the same goroutine.
func (pnl *Panel) Frame() *image.RGBA {
	return pnl.cmp.Frame()
}

// IsQuitRequested returns true if the user has asked for the application to
// close.
func (pnl *Panel) IsQuitRequested() bool {
	return pnl.quit.Load()
}

// SetEnabled turns the panel on or off. A disabled panel is always black.
func (pnl *Panel) SetEnabled(on bool) {
	pnl.enabled.Store(on)
}

// AllowLogging returns true if the panel is enabled. Logging of panel activity
// is suppressed while the panel is off.
//
// Implements the logger.Permission interface.
func (pnl *Panel) AllowLogging() bool {
	return pnl.enabled.Load()
}

// Buttons returns the bitmask of the front panel buttons currently held by
// the user.
func (pnl *Panel) Buttons() *buttons.Pressed {
	return &pnl.pressed
}

// Prefs returns the display preferences of the panel.
func (pnl *Panel) Prefs() *compositor.Preferences {
	return pnl.cmp.Prefs
}
