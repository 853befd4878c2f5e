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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/mk2panel/curated"
	"github.com/jetsetilly/mk2panel/hardware/lcd"
)

// Playback feeds the writes in a transcript to an lcd.Bus, one tick at a
// time.
type Playback struct {
	sequence []entry
	seqCt    int

	// the current tick
	tick int

	// the tick of the last write in the transcript
	endTick int
}

func (plb *Playback) String() string {
	if plb.endTick == 0 {
		return fmt.Sprintf("%d/%d", plb.tick, plb.endTick)
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.tick, plb.endTick, 100*(float64(min(plb.tick, plb.endTick))/float64(plb.endTick)))
}

// LoadPlayback reads the named transcript file.
func LoadPlayback(path string) (*Playback, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("transcript: %v", err)
	}
	defer f.Close()
	return NewPlayback(f)
}

// NewPlayback reads a transcript from the io.Reader. The entire transcript is
// parsed and any error in the transcript causes failure.
func NewPlayback(r io.Reader) (*Playback, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("transcript: %v", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")
	if err := checkHeader(lines); err != nil {
		return nil, err
	}

	plb := &Playback{}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}

		if e.tick < plb.endTick {
			return nil, curated.Errorf(TicksOutOfOrder, i+1)
		}
		plb.endTick = e.tick

		plb.sequence = append(plb.sequence, e)
	}

	return plb, nil
}

// EndTick returns the tick of the last write in the transcript.
func (plb *Playback) EndTick() int {
	return plb.endTick
}

// Len returns the number of writes in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Step performs all the writes for the current tick and advances to the next
// tick. Returns false once every write has been performed.
func (plb *Playback) Step(bus lcd.Bus) bool {
	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].tick <= plb.tick {
		e := plb.sequence[plb.seqCt]
		bus.Write(e.registerSelect, e.data)
		plb.seqCt++
	}
	plb.tick++
	return plb.seqCt < len(plb.sequence)
}

// Rewind playback to the first tick.
func (plb *Playback) Rewind() {
	plb.seqCt = 0
	plb.tick = 0
}
