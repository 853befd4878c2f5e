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

package sdlpanel

import (
	"image"

	"github.com/jetsetilly/mk2panel/compositor"
	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/userinput"
	"github.com/jetsetilly/mk2panel/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SdlPanel is an implementation of the panel.Surface interface.
type SdlPanel struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// NewSdlPanel is the preferred method of initialisation for the SdlPanel
// type. Returns an error if SDL or any of the SDL resources cannot be
// created.
func NewSdlPanel(scale int) (*SdlPanel, error) {
	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlpanel: %v", err)
	}

	scr := &SdlPanel{}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(compositor.Width*scale), int32(compositor.Height*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlpanel: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlpanel: %v", err)
	}

	// the renderer scales the texture to the window
	err = scr.renderer.SetLogicalSize(compositor.Width, compositor.Height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlpanel: %v", err)
	}

	// ABGR8888 is the byte order R, G, B, A on little-endian machines which
	// is the layout of image.RGBA
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		compositor.Width, compositor.Height)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlpanel: %v", err)
	}

	// mouse input is not used
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Present implements the panel.Surface interface.
func (scr *SdlPanel) Present(frame *image.RGBA) error {
	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlpanel: %v", err)
	}

	b := frame.Bounds()
	rowLen := b.Dx() * 4
	for y := range b.Dy() {
		o := frame.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pixels[y*pitch:y*pitch+rowLen], frame.Pix[o:o+rowLen])
	}
	scr.texture.Unlock()

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlpanel: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlpanel: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// Events implements the panel.Surface interface.
func (scr *SdlPanel) Events() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			events = append(events, userinput.EventKeyboard{
				Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})
		}
	}

	return events
}

// Destroy implements the panel.Surface interface.
func (scr *SdlPanel) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}
