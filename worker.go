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
	"context"
	"os"

	"github.com/jetsetilly/mk2panel/hardware/lcd"
	"github.com/jetsetilly/mk2panel/limiter"
	"github.com/jetsetilly/mk2panel/logger"
	"github.com/jetsetilly/mk2panel/panel"
	"github.com/jetsetilly/mk2panel/transcript"
)

// source of LCD writes for the emulation worker.
type source struct {
	plb *transcript.Playback

	// the demo transcript is looped
	loop bool

	// writes are sent to the bus. the bus will be the panel or a recorder
	// wrapping the panel
	bus lcd.Bus
	rec *transcript.Recorder
	out *os.File
}

func newSource(opts *options, pnl *panel.Panel) (*source, error) {
	src := &source{bus: pnl}

	if *opts.transcript == "" {
		src.plb = transcript.Demo()
		src.loop = true
	} else {
		var err error
		src.plb, err = transcript.LoadPlayback(*opts.transcript)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "mk2panel", "playing %s (%d writes)", *opts.transcript, src.plb.Len())
	}

	if *opts.record != "" {
		var err error
		src.out, err = os.Create(*opts.record)
		if err != nil {
			return nil, err
		}
		src.rec, err = transcript.NewRecorder(pnl, src.out)
		if err != nil {
			src.out.Close()
			return nil, err
		}
		src.bus = src.rec
	}

	return src, nil
}

// step performs the writes for a single tick while holding the panel lock.
// Returns false if there are no more writes.
func (src *source) step(pnl *panel.Panel) bool {
	pnl.Lock()
	more := src.plb.Step(src.bus)
	pnl.Unlock()

	if src.rec != nil {
		src.rec.Tick()
	}

	if !more && src.loop {
		src.plb.Rewind()
		return true
	}

	return more
}

// end the source. if writes have been recorded the transcript file is
// completed.
func (src *source) end() error {
	if src.rec == nil {
		return nil
	}
	defer src.out.Close()
	return src.rec.End()
}

// emulate is the emulation worker. writes are performed at the requested rate
// until the source is exhausted or the context is done.
func emulate(ctx context.Context, pnl *panel.Panel, src *source, fps int) error {
	lim, err := limiter.NewFPSLimiter(ctx, fps)
	if err != nil {
		return err
	}

	var pressed uint32

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if !src.step(pnl) {
			logger.Logf(logger.Allow, "mk2panel", "transcript ended at tick %d", src.plb.EndTick())
			return nil
		}

		// the buttons are not used by the transcript but changes are noted
		// in the log while the panel is enabled
		if b := pnl.Buttons().Load(); b != pressed {
			pressed = b
			logger.Log(pnl, "buttons", pnl.Buttons())
		}

		lim.Wait()
	}
}
