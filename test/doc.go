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

// Package test contains helper functions for the test files of the other
// packages. The functions compare values and report failures through the
// testing.T instance in a consistent manner.
//
// The Expect functions report a failure but allow the test to continue. The
// Demand functions halt the test on failure. Demand functions should be used
// when the value being tested is used in further tests. For example, testing
// the length of a slice before indexing it.
//
// All functions accept an optional list of tags. The tags are printed at the
// start of a failure message and help to identify which of many similar tests
// has failed.
package test
