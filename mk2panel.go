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
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/mk2panel/gui/sdlpanel"
	"github.com/jetsetilly/mk2panel/gui/termpanel"
	"github.com/jetsetilly/mk2panel/limiter"
	"github.com/jetsetilly/mk2panel/logger"
	"github.com/jetsetilly/mk2panel/modalflag"
	"github.com/jetsetilly/mk2panel/panel"
	"github.com/jetsetilly/mk2panel/statsview"
	"github.com/jetsetilly/mk2panel/version"
)

// SDL requires that window creation and event handling happen on the main
// thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "HEADLESS")
	md.AdditionalHelp(fmt.Sprintf("%s\n\nkeys: Q W E R T Y U I O P [ A S D F G H J K and the left/right cursor keys", version.String()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "TERM":
		err = term(md)

	case "HEADLESS":
		err = headless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	scale := md.AddInt("scale", 1, "window scale")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	return interactive(opts, func() (panel.Surface, error) {
		return sdlpanel.NewSdlPanel(*scale)
	})
}

func term(md *modalflag.Modes) error {
	md.NewMode()
	opts := addOptions(md)
	cols := md.AddInt("cols", 0, "width of panel in characters (0 is the width of the terminal)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// log entries would interfere with the panel
	*opts.log = false

	return interactive(opts, func() (panel.Surface, error) {
		return termpanel.NewTermPanel(os.Stdin, os.Stdout, *cols)
	})
}

// interactive runs the panel until the user quits. the emulation worker is run
// in its own goroutine and the panel is rendered from the main thread.
func interactive(opts *options, create panel.SurfaceCreator) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ctrl-c ends the session in the same way as closing the window
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	if *opts.log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *opts.statsview {
		stop := statsview.Launch(os.Stdout, "")
		defer stop()
	}

	ses, err := newSession(opts, create)
	if err != nil {
		return err
	}
	defer ses.abandon()
	pnl := ses.pnl

	if !pnl.Initialise() {
		return fmt.Errorf("panel could not be initialised (run with -log for details)")
	}
	defer pnl.Shutdown()

	src, err := newSource(opts, pnl)
	if err != nil {
		return err
	}

	pnl.SetEnabled(ses.set.enabled())

	done := make(chan error, 1)
	go func() {
		done <- emulate(ctx, pnl, src, ses.set.refreshRate())
	}()

	err = refresh(ctx, pnl, ses.set.refreshRate(), intChan)
	cancel()

	// wait for emulation worker to end. it will do so promptly once the
	// context has been cancelled
	if werr := <-done; werr != nil && err == nil {
		err = werr
	}

	if serr := src.end(); serr != nil && err == nil {
		err = serr
	}

	if *opts.screenshot {
		if serr := screenshot(pnl, ses.set.scale()); serr != nil && err == nil {
			err = serr
		}
	}

	if derr := ses.end(); derr != nil && err == nil {
		err = derr
	}

	return err
}

// refresh renders the panel at the requested rate until the user quits. the
// panel continues to be rendered after the emulation worker has ended. the
// achieved rate is logged on return.
func refresh(ctx context.Context, pnl *panel.Panel, fps int, intChan chan os.Signal) error {
	lim, err := limiter.NewFPSLimiter(ctx, fps)
	if err != nil {
		return err
	}

	var frames int
	start := time.Now()
	defer func() {
		rate, accuracy := limiter.CalcFPS(frames, time.Since(start), fps)
		logger.Logf(logger.Allow, "mk2panel", "refresh rate %.1f fps (%.0f%% of %d)", rate, accuracy, fps)
	}()

	for {
		select {
		case <-intChan:
			return nil
		default:
		}

		pnl.Render()
		frames++
		if pnl.IsQuitRequested() {
			return nil
		}

		lim.Wait()
	}
}
