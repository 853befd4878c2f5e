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

package compositor

// dimensions of the panel image.
const (
	Width  = 741
	Height = 268
)

// cell is the position of a single character cell on the panel. index is the
// position of the character in the controller's display data. col and row
// are the pixel position of the top-left corner of the cell.
type cell struct {
	index int
	col   int
	row   int

	// the number of dot columns drawn. only used by the level cells
	width int
}

// geometry of a character cell. the block is the size of a single dot and
// the stride is the distance between the start of adjacent dots.
type geometry struct {
	rows        int
	blockWidth  int
	blockHeight int
	colStride   int
	rowStride   int
}

var standardGeometry = geometry{
	rows:        7,
	blockWidth:  5,
	blockHeight: 5,
	colStride:   6,
	rowStride:   6,
}

var levelGeometry = geometry{
	rows:        8,
	blockWidth:  24,
	blockHeight: 9,
	colStride:   26,
	rowStride:   11,
}

// the standard cells. the display data is not laid out in panel order so the
// table has an entry for every cell
var standardCells = [...]cell{
	{index: 0, col: 34, row: 11, width: 5},
	{index: 1, col: 69, row: 11, width: 5},
	{index: 2, col: 104, row: 11, width: 5},
	{index: 3, col: 153, row: 11, width: 5},
	{index: 4, col: 188, row: 11, width: 5},
	{index: 5, col: 223, row: 11, width: 5},
	{index: 6, col: 258, row: 11, width: 5},
	{index: 7, col: 293, row: 11, width: 5},
	{index: 8, col: 328, row: 11, width: 5},
	{index: 9, col: 363, row: 11, width: 5},
	{index: 10, col: 398, row: 11, width: 5},
	{index: 11, col: 433, row: 11, width: 5},
	{index: 12, col: 468, row: 11, width: 5},
	{index: 13, col: 503, row: 11, width: 5},
	{index: 14, col: 538, row: 11, width: 5},
	{index: 15, col: 573, row: 11, width: 5},
	{index: 16, col: 608, row: 11, width: 5},
	{index: 17, col: 643, row: 11, width: 5},
	{index: 18, col: 678, row: 11, width: 5},
	{index: 40, col: 34, row: 75, width: 5},
	{index: 41, col: 69, row: 75, width: 5},
	{index: 42, col: 104, row: 75, width: 5},
	{index: 43, col: 153, row: 75, width: 5},
	{index: 44, col: 188, row: 75, width: 5},
	{index: 45, col: 223, row: 75, width: 5},
	{index: 49, col: 34, row: 139, width: 5},
	{index: 50, col: 69, row: 139, width: 5},
	{index: 51, col: 104, row: 139, width: 5},
	{index: 46, col: 153, row: 139, width: 5},
	{index: 47, col: 188, row: 139, width: 5},
	{index: 48, col: 223, row: 139, width: 5},
	{index: 52, col: 34, row: 203, width: 5},
	{index: 53, col: 69, row: 203, width: 5},
	{index: 54, col: 104, row: 203, width: 5},
	{index: 55, col: 153, row: 203, width: 5},
	{index: 56, col: 188, row: 203, width: 5},
	{index: 57, col: 223, row: 203, width: 5},
}

// the level meter cells. the last cell of each row shows only the leftmost
// column of dots
var levelCells = [...]cell{
	{index: 20, col: 293, row: 71, width: 5},
	{index: 21, col: 423, row: 71, width: 5},
	{index: 22, col: 553, row: 71, width: 5},
	{index: 23, col: 683, row: 71, width: 1},
	{index: 60, col: 293, row: 159, width: 5},
	{index: 61, col: 423, row: 159, width: 5},
	{index: 62, col: 553, row: 159, width: 5},
	{index: 63, col: 683, row: 159, width: 1},
}
