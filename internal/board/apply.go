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

package board

import (
	. "github.com/paulmialane/chessmg/internal/types"
)

// Apply mutates the board in place to reflect m. There is no undo: the
// caller clones the board first if it needs to roll back (this is how
// the legality filter and any tree search work).
func (b *Board) Apply(m Move) {
	mover := m.PieceColor
	enemy := mover.Flip()

	b.clearPiece(mover, m.PieceKind, m.From)

	if m.PieceKind == King {
		b.castling.Remove(BothFor(mover))
	} else if m.PieceKind == Rook {
		b.clearCastlingOnRookMove(mover, m.From)
	}

	if !m.IsPromotion() {
		b.setPiece(mover, m.PieceKind, m.To)
	}

	if m.IsCapture() {
		capturedSq := m.To
		if m.EnPassant {
			capturedSq = capturedSq.To(mover.Flip().PawnPushDirection())
		}
		b.clearPiece(enemy, m.Captured, capturedSq)
		if m.Captured == Rook {
			b.clearCastlingOnRookMove(enemy, capturedSq)
		}
	}

	if m.IsPromotion() {
		b.setPiece(mover, m.Promotion, m.To)
	}

	if m.DoublePush {
		b.ep = midpoint(m.From, m.To)
	} else {
		b.ep = SqNone
	}

	if m.Castling {
		b.moveCastlingRook(mover, m.To)
	}

	b.toMove = enemy
}

// clearCastlingOnRookMove drops the castling right matching whichever
// corner sq is, for the given color. A1/A8 hold the queenside rook, H1/H8
// the kingside rook; this mapping is used both for the mover's own rook
// leaving its corner and for an enemy rook being captured there.
func (b *Board) clearCastlingOnRookMove(c Color, sq Square) {
	switch {
	case c == White && sq == SqA1:
		b.castling.Remove(CastlingWhiteOOO)
	case c == White && sq == SqH1:
		b.castling.Remove(CastlingWhiteOO)
	case c == Black && sq == SqA8:
		b.castling.Remove(CastlingBlackOOO)
	case c == Black && sq == SqH8:
		b.castling.Remove(CastlingBlackOO)
	}
}

// moveCastlingRook relocates the rook for a castling move once the king
// has already been placed at kingTo.
func (b *Board) moveCastlingRook(c Color, kingTo Square) {
	switch kingTo {
	case SqG1:
		b.clearPiece(White, Rook, SqH1)
		b.setPiece(White, Rook, SqF1)
	case SqC1:
		b.clearPiece(White, Rook, SqA1)
		b.setPiece(White, Rook, SqD1)
	case SqG8:
		b.clearPiece(Black, Rook, SqH8)
		b.setPiece(Black, Rook, SqF8)
	case SqC8:
		b.clearPiece(Black, Rook, SqA8)
		b.setPiece(Black, Rook, SqD8)
	}
}

func midpoint(from, to Square) Square {
	return Square((uint8(from) + uint8(to)) / 2)
}
