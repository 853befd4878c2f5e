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
	"os"

	"github.com/jetsetilly/mk2panel/compositor"
	"github.com/jetsetilly/mk2panel/logger"
	"github.com/jetsetilly/mk2panel/modalflag"
	"github.com/jetsetilly/mk2panel/panel"
	"github.com/jetsetilly/mk2panel/paths"
	"github.com/jetsetilly/mk2panel/prefs"
)

// the background file looked for in the resource directory if the
// -background flag is not used
const defaultBackground = "back.data"

// options common to every mode. the values are only valid after the call to
// Parse()
type options struct {
	background *string
	transcript *string
	record     *string
	fps        *int
	prefs      *string
	log        *bool
	statsview  *bool
	screenshot *bool
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		background: md.AddString("background", "", "background image (raw, png, bmp, tiff, gif or jpeg)"),
		transcript: md.AddString("transcript", "", "transcript of LCD writes to play (demo if not specified)"),
		record:     md.AddString("record", "", "record LCD writes to transcript file"),
		fps:        md.AddInt("fps", 0, "refresh rate of panel and emulation (panel.fps preference if not specified)"),
		prefs:      md.AddString("prefs", "", "preferences for this session (eg. \"lcd.ink::#101010\")"),
		log:        md.AddBool("log", false, "echo log to stderr"),
		statsview:  md.AddBool("statsview", false, "run stats server"),
		screenshot: md.AddBool("screenshot", false, "save screenshot of final frame"),
	}
}

// backgroundPath returns the background file to use. If no file has been
// specified then the default background in the resource directory is used,
// if it exists.
func (opts *options) backgroundPath() string {
	if *opts.background != "" {
		return *opts.background
	}
	pth, err := paths.ResourcePath("", defaultBackground)
	if err != nil {
		logger.Log(logger.Allow, "mk2panel", err)
		return ""
	}
	if _, err := os.Stat(pth); err != nil {
		return ""
	}
	return pth
}

// session is a panel and the preferences file it was configured from.
type session struct {
	pnl *panel.Panel
	set *settings
	dsk *prefs.Disk

	// preferences were given on the command line
	cmdline bool
	ended   bool
}

// commandLinePrefs returns the prefs string for the command line stack. The
// -fps flag is treated as the panel.fps preference.
func (opts *options) commandLinePrefs() string {
	s := *opts.prefs
	if *opts.fps != 0 {
		s = fmt.Sprintf("%s; panel.fps::%d", s, *opts.fps)
	}
	return s
}

// newSession creates the panel and loads the preferences.
func newSession(opts *options, create panel.SurfaceCreator) (ses *session, err error) {
	ses = &session{
		pnl: panel.NewPanel(create),
		set: newSettings(),
	}
	ses.pnl.SetBackgroundAssetPath(opts.backgroundPath())

	if cl := opts.commandLinePrefs(); cl != "" {
		prefs.PushCommandLineStack(cl)
		ses.cmdline = true

		// the stack must not outlive a session that fails to start
		defer func() {
			if err != nil {
				prefs.PopCommandLineStack()
			}
		}()
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	ses.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = ses.pnl.Prefs().Register(ses.dsk)
	if err != nil {
		return nil, err
	}

	err = ses.set.register(ses.dsk)
	if err != nil {
		return nil, err
	}

	err = ses.dsk.Load()
	if err != nil {
		if !isRecoverablePref(err) {
			return nil, err
		}
		logger.Log(logger.Allow, "mk2panel", err)
		err = nil
	}

	logger.Log(logger.Allow, "mk2panel", ses.set)

	return ses, nil
}

// end the session. preferences are only saved if none were given on the
// command line
func (ses *session) end() error {
	if ses.ended {
		return nil
	}
	ses.ended = true

	if ses.cmdline {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "mk2panel", "unused preferences: %s", unused)
		}
		return nil
	}
	return ses.dsk.Save()
}

// abandon a session that failed to start. preferences are not saved. does
// nothing if the session has already ended
func (ses *session) abandon() {
	if ses.ended {
		return
	}
	ses.ended = true

	if ses.cmdline {
		prefs.PopCommandLineStack()
	}
}

// screenshot saves the most recent frame to a uniquely named file in the
// current directory.
func screenshot(pnl *panel.Panel, scale float64) error {
	fn := paths.UniqueFilename("screenshot", "png")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	err = compositor.Screenshot(pnl.Frame(), scale, f)
	if err != nil {
		return err
	}

	fmt.Printf("* screenshot saved to %s\n", fn)
	return nil
}
