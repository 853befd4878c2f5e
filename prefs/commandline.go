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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack. each entry holds the key/value pairs from a single
// prefs string. a key is removed from the stack once it has been used but it
// is remembered so that a subsequent Load() does not overwrite it.
type commandLine struct {
	crit  sync.Mutex
	stack []map[string]Value
	used  map[string]bool
}

var cl = commandLine{
	used: make(map[string]bool),
}

// SizeCommandLineStack returns the number of entries in the command line
// stack.
func SizeCommandLineStack() int {
	cl.crit.Lock()
	defer cl.crit.Unlock()
	return len(cl.stack)
}

// PushCommandLineStack forwards command line arguments to the prefs system.
// The prefs string is of the form:
//
//	key::value; key::value
//
// Entries that are not of that form are ignored.
func PushCommandLineStack(prefs string) {
	cl.crit.Lock()
	defer cl.crit.Unlock()

	top := make(map[string]Value)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		top[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	cl.stack = append(cl.stack, top)
}

// PopCommandLineStack removes the top of the stack. The returned string is
// the prefs string made up of the entries that were never used, sorted by key.
func PopCommandLineStack() string {
	cl.crit.Lock()
	defer cl.crit.Unlock()

	if len(cl.stack) == 0 {
		return ""
	}

	popped := cl.stack[len(cl.stack)-1]
	cl.stack = cl.stack[:len(cl.stack)-1]
	if len(cl.stack) == 0 {
		clear(cl.used)
	}

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%v; ", k, popped[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// GetCommandLinePref returns the value of the key from the top of the command
// line stack. The entry is removed from the stack.
func GetCommandLinePref(key string) (bool, Value) {
	cl.crit.Lock()
	defer cl.crit.Unlock()

	if len(cl.stack) == 0 {
		return false, nil
	}

	top := cl.stack[len(cl.stack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		cl.used[key] = true
		return true, v
	}

	return false, nil
}

// whether the key has been taken from the command line stack
func isCommandLinePref(key string) bool {
	cl.crit.Lock()
	defer cl.crit.Unlock()
	return cl.used[key]
}
