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

package userinput

import "github.com/jetsetilly/mk2panel/hardware/buttons"

// Binding associates a physical key with a logical button.
type Binding struct {
	Key    string
	Button buttons.Button
}

// keymap is the fixed list of key bindings. a button can be bound to more than
// one key
var keymap = [...]Binding{
	{Key: "Q", Button: buttons.Power},
	{Key: "W", Button: buttons.InstAll},
	{Key: "E", Button: buttons.InstMute},
	{Key: "R", Button: buttons.PartL},
	{Key: "T", Button: buttons.PartR},
	{Key: "Y", Button: buttons.InstL},
	{Key: "U", Button: buttons.InstR},
	{Key: "I", Button: buttons.KeyShiftL},
	{Key: "O", Button: buttons.KeyShiftR},
	{Key: "P", Button: buttons.LevelL},
	{Key: "[", Button: buttons.LevelR},
	{Key: "A", Button: buttons.MidiChL},
	{Key: "S", Button: buttons.MidiChR},
	{Key: "D", Button: buttons.PanL},
	{Key: "F", Button: buttons.PanR},
	{Key: "G", Button: buttons.ReverbL},
	{Key: "H", Button: buttons.ReverbR},
	{Key: "J", Button: buttons.ChorusL},
	{Key: "K", Button: buttons.ChorusR},
	{Key: "Left", Button: buttons.PartL},
	{Key: "Right", Button: buttons.PartR},
}

// Bindings returns a copy of the key bindings.
func Bindings() []Binding {
	b := make([]Binding, len(keymap))
	copy(b, keymap[:])
	return b
}

// Mask returns the combined bits of every button bound to the named key.
// Returns zero if the key is not bound.
func Mask(key string) uint32 {
	var mask uint32
	for _, b := range keymap {
		if b.Key == key {
			mask |= b.Button.Mask()
		}
	}
	return mask
}
