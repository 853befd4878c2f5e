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

// builder collects writes into a sequence of entries. implements the lcd.Bus
// interface
type builder struct {
	sequence []entry
	tick     int
}

func (b *builder) Write(registerSelect int, data uint8) {
	b.sequence = append(b.sequence, entry{tick: b.tick, registerSelect: registerSelect, data: data})
}

func (b *builder) text(addr uint8, s string) {
	b.Write(0, 0x80|addr)
	for _, c := range []byte(s) {
		b.Write(1, c)
	}
}

// number of ticks in the demo. the level meter animation repeats seamlessly
// if the demo is rewound at the end
const demoTicks = 64

// the number of parts shown on the level meter. each column of dots in the
// meter is one part
const demoParts = 16

// height of the level meter for the part at the tick
func demoLevel(part int, tick int) int {
	phase := (tick*2 + part*4) % 32
	if phase > 16 {
		return 32 - phase
	}
	return phase
}

// Demo returns a transcript that initialises the controller, writes the
// values of a typical part display and then animates the level meter.
func Demo() *Playback {
	b := &builder{}

	b.Write(0, 0x38) // 8-bit, two line
	b.Write(0, 0x0c) // display on
	b.Write(0, 0x01) // clear display
	b.Write(0, 0x06) // increment

	// part and instrument
	b.text(0x00, "A01mk2panel demo   ")

	// level, pan, chorus, reverb, key shift and MIDI channel
	b.text(0x40, "100  0  0 40  0  1")

	// the level meter cells show the eight CGRAM glyphs. the top row of the
	// meter is glyphs 0 to 3 and the bottom row is glyphs 4 to 7
	b.text(0x14, "\x00\x01\x02\x03")
	b.text(0x54, "\x04\x05\x06\x07")

	for t := range demoTicks {
		b.tick = t
		b.Write(0, 0x40)
		for slot := range 8 {
			cell := slot % 4
			top := slot < 4
			for row := range 8 {
				var dots uint8
				for d := range 5 {
					part := cell*5 + d
					if part >= demoParts {
						break
					}
					threshold := 8 - row
					if top {
						threshold += 8
					}
					if demoLevel(part, t) >= threshold {
						dots |= 1 << (4 - d)
					}
				}
				b.Write(1, dots)
			}
		}
	}

	return &Playback{
		sequence: b.sequence,
		endTick:  demoTicks - 1,
	}
}
