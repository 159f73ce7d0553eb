//
// chessmg - a magic-bitboard chess move generation core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"github.com/paulmialane/chessmg/internal/board"
	"github.com/paulmialane/chessmg/internal/magic"
	. "github.com/paulmialane/chessmg/internal/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by on
// b. Unlike some engines' attack queries, this one deliberately has no
// en-passant special case: it only asks whether a piece could capture
// on sq right now, not about pawns that could be captured en passant.
func IsAttacked(b *board.Board, sq Square, by Color) bool {
	occ := b.OccupancyAll()

	if GetPawnAttacks(by.Flip(), sq)&b.PieceBb(by, Pawn) != 0 {
		return true
	}
	if GetPseudoAttacks(King, sq)&b.PieceBb(by, King) != 0 {
		return true
	}
	if GetPseudoAttacks(Knight, sq)&b.PieceBb(by, Knight) != 0 {
		return true
	}

	bishopsQueens := b.PieceBb(by, Bishop) | b.PieceBb(by, Queen)
	if magic.Attacks(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.PieceBb(by, Rook) | b.PieceBb(by, Queen)
	if magic.Attacks(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}

	return false
}
