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

// Kind is a piece kind independent of color: King, Pawn, Knight, Bishop,
// Rook or Queen. The bit layout keeps sliding pieces (Bishop, Rook, Queen)
// distinguished from non-sliders by bit 0b0100.
type Kind uint8

const (
	KtNone Kind = 0b0000
	King   Kind = 0b0001
	Pawn   Kind = 0b0010
	Knight Kind = 0b0011
	Bishop Kind = 0b0100
	Rook   Kind = 0b0101
	Queen  Kind = 0b0110
	KtLength = 0b0111
)

// IsValid reports whether kt is one of the six real piece kinds.
func (kt Kind) IsValid() bool {
	return kt > KtNone && kt < KtLength
}

// IsSlider reports whether pieces of this kind move along open rays
// (Bishop, Rook, Queen), as opposed to King/Pawn/Knight's fixed steps.
func (kt Kind) IsSlider() bool {
	return kt&0b0100 != 0 && kt < KtLength
}

var kindToChar = "-KPNBRQ"

// Char returns the single uppercase FEN letter for the piece kind.
func (kt Kind) Char() string {
	return string(kindToChar[kt])
}

var kindToString = [KtLength]string{"None", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the English name of the piece kind.
func (kt Kind) String() string {
	return kindToString[kt]
}
