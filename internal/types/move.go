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

// Move is an immutable record of a single chess move. Unlike a bit-packed
// encoding, every field is named; a Move is cheap to copy and never
// mutated after construction.
//
// At most one of DoublePush, EnPassant, Castling is true. EnPassant
// implies Captured == Pawn. Castling implies PieceKind == King and
// {From,To} is one of the four king castling pairs. Promotion implies
// PieceKind == Pawn and To is on the mover's last rank.
type Move struct {
	PieceKind  Kind
	PieceColor Color
	From       Square
	To         Square
	Promotion  Kind // KtNone if this move is not a promotion
	Captured   Kind // KtNone if this move is not a capture

	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != KtNone
}

// IsCapture reports whether this move captures an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != KtNone
}

// StringUci renders the move in UCI long algebraic notation, e.g.
// "e2e4" or "e7e8q" for a queen promotion.
func (m Move) StringUci() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += promotionChar[m.Promotion]
	}
	return s
}

var promotionChar = map[Kind]string{
	Queen:  "q",
	Rook:   "r",
	Bishop: "b",
	Knight: "n",
}

// String returns the same representation as StringUci.
func (m Move) String() string {
	return m.StringUci()
}
