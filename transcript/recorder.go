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

package transcript

import (
	"bufio"
	"io"

	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/hardware/lcd"
)

// Recorder forwards writes to an lcd.Bus and records them to a transcript.
//
// Implements the lcd.Bus interface.
type Recorder struct {
	bus    lcd.Bus
	output *bufio.Writer
	tick   int

	// the first error encountered when writing the transcript. once an error
	// has occurred nothing more is recorded but writes are still forwarded
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The transcript header is written immediately.
func NewRecorder(bus lcd.Bus, output io.Writer) (*Recorder, error) {
	rec := &Recorder{
		bus:    bus,
		output: bufio.NewWriter(output),
	}

	if _, err := rec.output.WriteString(header()); err != nil {
		return nil, curated.Errorf("transcript: %v", err)
	}

	return rec, nil
}

// Write forwards the write to the bus and records it.
func (rec *Recorder) Write(registerSelect int, data uint8) {
	rec.bus.Write(registerSelect, data)

	if rec.err != nil {
		return
	}

	e := entry{tick: rec.tick, registerSelect: registerSelect, data: data}
	if _, err := rec.output.WriteString(e.String() + "\n"); err != nil {
		rec.err = curated.Errorf("transcript: %v", err)
	}
}

// Tick advances the recorder to the next tick.
func (rec *Recorder) Tick() {
	rec.tick++
}

// End flushes the transcript. Returns the first error encountered while
// recording.
func (rec *Recorder) End() error {
	if rec.err != nil {
		return rec.err
	}
	if err := rec.output.Flush(); err != nil {
		return curated.Errorf("transcript: %v", err)
	}
	return nil
}
