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

package types

import "strings"

// Piece packs a Color and a Kind into one value: bit 3 holds the color,
// the low three bits hold the Kind.
type Piece uint8

const (
	PieceNone   Piece = 0
	WhiteKing   Piece = Piece(King)
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	BlackKing   Piece = Piece(King) | 0b1000
	BlackPawn   Piece = Piece(Pawn) | 0b1000
	BlackKnight Piece = Piece(Knight) | 0b1000
	BlackBishop Piece = Piece(Bishop) | 0b1000
	BlackRook   Piece = Piece(Rook) | 0b1000
	BlackQueen  Piece = Piece(Queen) | 0b1000
	PieceLength = 16
)

// MakePiece builds a Piece from a color and a kind.
func MakePiece(c Color, kt Kind) Piece {
	return Piece(uint8(c)<<3) | Piece(kt)
}

// ColorOf returns the owning color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// KindOf returns the piece kind, ignoring color.
func (p Piece) KindOf() Kind {
	return Kind(p & 0b0111)
}

// IsValid reports whether p encodes a real piece.
func (p Piece) IsValid() bool {
	return p.KindOf().IsValid()
}

var pieceToChar = " KPNBRQ- kpnbrq-"

// Char returns the FEN piece letter: uppercase for White, lowercase for
// Black (e.g. "N" for a white knight, "q" for a black queen).
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone if
// s is not exactly one recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx < 0 || s == "-" {
		return PieceNone
	}
	return Piece(idx)
}

// String returns the same single-letter form as Char.
func (p Piece) String() string {
	return p.Char()
}
