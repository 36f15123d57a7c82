package bitboard

import "math/bits"

// Number of cells on the big board
const Cells = 81

// Pattern with every cell of a small board set
const Full uint16 = 0b111111111

// horizontal, vertical and diagonal patterns as bitboards
var WinningPatterns = [8]uint16{
	0b111000000, 0b000111000, 0b000000111,
	0b100100100, 0b010010010, 0b001001001,
	0b100010001, 0b001010100,
}

// local -> global lookup, indexed by [sub][local]
var _localToGlobal [9][9]int

// every cell of given sub-board
var _subBoardMasks [9]Board

func init() {
	for cell := range Cells {
		sub := SubBoardOf(cell)
		_localToGlobal[sub][LocalIndexOf(cell)] = cell
		_subBoardMasks[sub] = _subBoardMasks[sub].Occupy(cell)
	}
}

// Occupancy of the 81 cells for one player, cells 0-63 live in lo,
// cells 64-80 in hi. Global cell g is row-major over the 9x9 grid.
type Board struct {
	lo uint64
	hi uint32
}

// Return a copy of the board with given cell occupied
func (b Board) Occupy(cell int) Board {
	if cell < 64 {
		b.lo |= 1 << cell
	} else {
		b.hi |= 1 << (cell - 64)
	}
	return b
}

func (b Board) Has(cell int) bool {
	if cell < 64 {
		return b.lo&(1<<cell) != 0
	}
	return b.hi&(1<<(cell-64)) != 0
}

func (b Board) Union(other Board) Board {
	return Board{lo: b.lo | other.lo, hi: b.hi | other.hi}
}

func (b Board) AndNot(other Board) Board {
	return Board{lo: b.lo &^ other.lo, hi: b.hi &^ other.hi}
}

func (b Board) Intersects(other Board) bool {
	return b.lo&other.lo != 0 || b.hi&other.hi != 0
}

func (b Board) Count() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount32(b.hi)
}

func (b Board) IsEmpty() bool {
	return b.lo == 0 && b.hi == 0
}

// Index of the lowest occupied cell, 81 if the board is empty
func (b Board) Lowest() int {
	if b.lo != 0 {
		return bits.TrailingZeros64(b.lo)
	}
	if b.hi != 0 {
		return 64 + bits.TrailingZeros32(b.hi)
	}
	return Cells
}

// Board without its lowest occupied cell
func (b Board) ClearLowest() Board {
	if b.lo != 0 {
		b.lo &= b.lo - 1
	} else {
		b.hi &= b.hi - 1
	}
	return b
}

// Read 3 consecutive bits starting at given global cell
func (b Board) triple(start int) uint16 {
	switch {
	case start >= 64:
		return uint16(b.hi>>(start-64)) & 0b111
	case start > 61:
		// row straddles the word boundary
		return uint16(b.lo>>start|uint64(b.hi)<<(64-start)) & 0b111
	default:
		return uint16(b.lo>>start) & 0b111
	}
}

// Gather the 9 cells of given sub-board into a dense pattern,
// where bit r*3+c is the local row r, column c
func (b Board) ExtractSubBoard(sub int) uint16 {
	subRow, subCol := sub/3, sub%3
	var pattern uint16
	for r := range 3 {
		start := (subRow*3+r)*9 + subCol*3
		pattern |= b.triple(start) << (r * 3)
	}
	return pattern
}

// Check if given small board pattern contains a full line
func CheckSmallWin(pattern uint16) bool {
	for _, p := range WinningPatterns {
		if pattern&p == p {
			return true
		}
	}
	return false
}

// Board with every cell of given sub-board occupied
func SubBoardMask(sub int) Board {
	return _subBoardMasks[sub]
}

func SubBoardOf(cell int) int {
	row, col := cell/9, cell%9
	return (row/3)*3 + col/3
}

func LocalIndexOf(cell int) int {
	row, col := cell/9, cell%9
	return (row%3)*3 + col%3
}

// Inverse of (SubBoardOf, LocalIndexOf)
func TranslateLocalToGlobal(local, sub int) int {
	return _localToGlobal[sub][local]
}
