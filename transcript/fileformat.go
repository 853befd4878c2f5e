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
	"strconv"
	"strings"

	"github.com/jetsetilly/mk2panel/curated"
)

const (
	magicString   = "mk2panel transcript"
	versionString = "v1"
)

const (
	lineMagic int = iota
	lineVersion
	numHeaderLines
)

const (
	fieldTick int = iota
	fieldRegisterSelect
	fieldData
	numFields
)

const fieldSep = ", "

// Error patterns.
const (
	NotATranscript     = "transcript: not a transcript file"
	UnsupportedVersion = "transcript: unsupported version (%s)"
	MalformedLine      = "transcript: line %d: %v"
	TicksOutOfOrder    = "transcript: tick out of order at line %d"
)

// entry is a single write to the controller.
type entry struct {
	tick           int
	registerSelect int
	data           uint8
}

func (e entry) String() string {
	return fmt.Sprintf("%d%s%d%s%02x", e.tick, fieldSep, e.registerSelect, fieldSep, e.data)
}

func header() string {
	return fmt.Sprintf("%s\n%s\n", magicString, versionString)
}

func checkHeader(lines []string) error {
	if len(lines) < numHeaderLines || strings.TrimSpace(lines[lineMagic]) != magicString {
		return curated.Errorf(NotATranscript)
	}
	if v := strings.TrimSpace(lines[lineVersion]); v != versionString {
		return curated.Errorf(UnsupportedVersion, v)
	}
	return nil
}

// parse a single line of the transcript. lineNum is used for error messages
// only
func parseEntry(line string, lineNum int) (entry, error) {
	var e entry

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return e, curated.Errorf(MalformedLine, lineNum, fmt.Sprintf("expected %d fields", numFields))
	}

	var err error

	e.tick, err = strconv.Atoi(strings.TrimSpace(toks[fieldTick]))
	if err != nil || e.tick < 0 {
		return e, curated.Errorf(MalformedLine, lineNum, fmt.Sprintf("invalid tick (%s)", toks[fieldTick]))
	}

	e.registerSelect, err = strconv.Atoi(strings.TrimSpace(toks[fieldRegisterSelect]))
	if err != nil {
		return e, curated.Errorf(MalformedLine, lineNum, fmt.Sprintf("invalid register select (%s)", toks[fieldRegisterSelect]))
	}

	d, err := strconv.ParseUint(strings.TrimSpace(toks[fieldData]), 16, 8)
	if err != nil {
		return e, curated.Errorf(MalformedLine, lineNum, fmt.Sprintf("invalid data (%s)", toks[fieldData]))
	}
	e.data = uint8(d)

	return e, nil
}
