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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/mk2panel/digest"
	"github.com/jetsetilly/mk2panel/logger"
	"github.com/jetsetilly/mk2panel/modalflag"
	"github.com/jetsetilly/mk2panel/panel"
)

func headless(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	frames := md.AddInt("frames", 64, "number of frames to render")
	mem := md.AddString("memviz", "", "write graphviz dot file of the final LCD state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *opts.log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	dig := digest.NewFrames()
	ses, err := renderFrames(opts, dig, *frames)
	if err != nil {
		return err
	}

	fmt.Println(dig.Hash())

	if *mem != "" {
		f, err := os.Create(*mem)
		if err != nil {
			return err
		}
		defer f.Close()
		dumpState(f, ses.pnl)
	}

	if *opts.screenshot {
		return screenshot(ses.pnl, ses.set.scale())
	}

	return nil
}

// renderFrames plays the transcript in step with the rendering of the panel
// to the digest. there is no frame rate limit and the result is always the
// same for the same transcript.
func renderFrames(opts *options, dig *digest.Frames, frames int) (*session, error) {
	ses, err := newSession(opts, func() (panel.Surface, error) {
		return dig, nil
	})
	if err != nil {
		return nil, err
	}
	defer ses.abandon()
	pnl := ses.pnl

	if !pnl.Initialise() {
		return nil, fmt.Errorf("panel could not be initialised (run with -log for details)")
	}
	defer pnl.Shutdown()

	src, err := newSource(opts, pnl)
	if err != nil {
		return nil, err
	}

	pnl.SetEnabled(ses.set.enabled())

	for range frames {
		src.step(pnl)
		pnl.Render()
		if pnl.IsQuitRequested() {
			break
		}
	}

	if err := src.end(); err != nil {
		return nil, err
	}

	if err := ses.end(); err != nil {
		return nil, err
	}

	return ses, nil
}

// dumpState writes a graphviz representation of the LCD controller state.
func dumpState(w io.Writer, pnl *panel.Panel) {
	snap := pnl.Snapshot()
	memviz.Map(w, &snap)
}
