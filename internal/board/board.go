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

// Package board holds the chess board state: twelve piece bitboards,
// side to move, castling rights and the en-passant target square. It
// owns FEN parsing/formatting and in-place move application; it does
// not itself generate or validate moves (see package movegen).
package board

import (
	"github.com/paulmialane/chessmg/internal/assert"
	. "github.com/paulmialane/chessmg/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is a chess position: twelve disjoint piece bitboards, side to
// move, castling rights and an en-passant target. Boards are
// independent values; a Board owns its bitboards by value and shares
// no state with any other Board.
type Board struct {
	pieces   [ColorLength][KtLength]Bitboard
	toMove   Color
	castling CastlingRights
	ep       Square // SqNone if there is no en-passant target
}

// New returns the board at the standard chess starting position.
func New() *Board {
	b, err := NewFromFen(StartFen)
	if err != nil {
		panic(err)
	}
	return b
}

// NewFromFen parses fen and returns the resulting board, or an
// InvalidFEN error describing why the string could not be parsed.
func NewFromFen(fen string) (*Board, error) {
	b := &Board{ep: SqNone}
	if err := b.setupFromFen(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// ToMove returns the side to move.
func (b *Board) ToMove() Color {
	return b.toMove
}

// Castling returns the current castling rights.
func (b *Board) Castling() CastlingRights {
	return b.castling
}

// EnPassantTarget returns the en-passant target square, or SqNone if
// there is none.
func (b *Board) EnPassantTarget() Square {
	return b.ep
}

// EpMask returns a Bitboard with only the en-passant target square set
// (or the empty bitboard if there is no target).
func (b *Board) EpMask() Bitboard {
	if b.ep == SqNone {
		return 0
	}
	return b.ep.Bb()
}

// PieceBb returns the bitboard for one (color, kind) pair.
func (b *Board) PieceBb(c Color, kt Kind) Bitboard {
	return b.pieces[c][kt]
}

// Occupancy returns every square occupied by pieces of c.
func (b *Board) Occupancy(c Color) Bitboard {
	var occ Bitboard
	for kt := King; kt < KtLength; kt++ {
		occ |= b.pieces[c][kt]
	}
	return occ
}

// OccupancyAll returns every occupied square on the board.
func (b *Board) OccupancyAll() Bitboard {
	return b.Occupancy(White) | b.Occupancy(Black)
}

// PieceAt probes every bitboard for sq and returns the piece found
// there, if any. The disjointness invariant guarantees at most one
// bitboard holds sq.
func (b *Board) PieceAt(sq Square) (kt Kind, c Color, ok bool) {
	for col := White; col <= Black; col++ {
		for k := King; k < KtLength; k++ {
			if b.pieces[col][k].Has(sq) {
				return k, col, true
			}
		}
	}
	return KtNone, White, false
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	king := b.pieces[c][King]
	if assert.DEBUG {
		assert.Assert(king.PopCount() == 1, "expected exactly one king of color %s, found %d", c, king.PopCount())
	}
	return king.Lsb()
}

func (b *Board) setPiece(c Color, kt Kind, sq Square) {
	b.pieces[c][kt] = b.pieces[c][kt].PushSquare(sq)
}

func (b *Board) clearPiece(c Color, kt Kind, sq Square) {
	b.pieces[c][kt] = b.pieces[c][kt].PopSquare(sq)
}
