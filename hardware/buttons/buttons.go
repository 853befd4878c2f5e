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

// Package buttons defines the logical buttons of the front panel and the
// bitmask that records which of them are currently held.
//
// The bitmask is written by the input bridge on the refresh goroutine and read
// by the emulation when it samples the panel's key matrix. The two never share
// a lock so the bitmask is only ever accessed atomically.
package buttons

import (
	"strings"
	"sync/atomic"
)

// Button is the bit position of a logical button in the Pressed bitmask.
type Button int

// List of valid Button values. The values are the bit positions expected by
// the emulated key matrix and are not contiguous.
const (
	Power     Button = 0
	InstL     Button = 3
	InstR     Button = 4
	InstMute  Button = 5
	InstAll   Button = 6
	MidiChL   Button = 7
	MidiChR   Button = 8
	ChorusL   Button = 9
	ChorusR   Button = 10
	PanL      Button = 11
	PanR      Button = 12
	PartR     Button = 13
	KeyShiftL Button = 14
	KeyShiftR Button = 15
	ReverbL   Button = 16
	ReverbR   Button = 17
	LevelL    Button = 18
	LevelR    Button = 19
	PartL     Button = 20
)

// All is the list of every Button in bit order.
var All = []Button{
	Power, InstL, InstR, InstMute, InstAll, MidiChL, MidiChR, ChorusL,
	ChorusR, PanL, PanR, PartR, KeyShiftL, KeyShiftR, ReverbL, ReverbR,
	LevelL, LevelR, PartL,
}

func (b Button) String() string {
	switch b {
	case Power:
		return "POWER"
	case InstL:
		return "INST L"
	case InstR:
		return "INST R"
	case InstMute:
		return "INST MUTE"
	case InstAll:
		return "INST ALL"
	case MidiChL:
		return "MIDI CH L"
	case MidiChR:
		return "MIDI CH R"
	case ChorusL:
		return "CHORUS L"
	case ChorusR:
		return "CHORUS R"
	case PanL:
		return "PAN L"
	case PanR:
		return "PAN R"
	case PartR:
		return "PART R"
	case KeyShiftL:
		return "KEY SHIFT L"
	case KeyShiftR:
		return "KEY SHIFT R"
	case ReverbL:
		return "REVERB L"
	case ReverbR:
		return "REVERB R"
	case LevelL:
		return "LEVEL L"
	case LevelR:
		return "LEVEL R"
	case PartL:
		return "PART L"
	}
	return "unknown button"
}

// Mask returns the bit for the Button.
func (b Button) Mask() uint32 {
	return 1 << uint(b)
}

// Pressed is the bitmask of held buttons. Bit N is set when Button N is held.
//
// The zero value is ready to use with no buttons held.
type Pressed struct {
	bits atomic.Uint32
}

// Load returns the current bitmask.
func (p *Pressed) Load() uint32 {
	return p.bits.Load()
}

// Store replaces the bitmask.
func (p *Pressed) Store(v uint32) {
	p.bits.Store(v)
}

// Press sets the bits in mask. Other bits are unchanged.
//
// The update is a load followed by a store and not a compare-and-swap. There
// is only ever one writer.
func (p *Pressed) Press(mask uint32) {
	p.bits.Store(p.bits.Load() | mask)
}

// Release clears the bits in mask. Other bits are unchanged.
func (p *Pressed) Release(mask uint32) {
	p.bits.Store(p.bits.Load() &^ mask)
}

// IsHeld returns true if the Button's bit is set.
func (p *Pressed) IsHeld(b Button) bool {
	return p.bits.Load()&b.Mask() != 0
}

func (p *Pressed) String() string {
	v := p.bits.Load()
	s := strings.Builder{}
	for _, b := range All {
		if v&b.Mask() != 0 {
			if s.Len() > 0 {
				s.WriteString(", ")
			}
			s.WriteString(b.String())
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}
