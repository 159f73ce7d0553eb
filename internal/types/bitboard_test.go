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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareRoundTrip(t *testing.T) {
	for sq := SqA1; sq < SqNone; sq++ {
		parsed := MakeSquare(sq.String())
		assert.Equal(t, sq, parsed)
	}
}

func TestMakeSquareInvalid(t *testing.T) {
	assert.Equal(t, SqNone, MakeSquare("i9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
	assert.Equal(t, SqNone, MakeSquare("e12"))
}

func TestShiftBitboardNoFileWrap(t *testing.T) {
	// A file-A pawn shifted west-ish must never land back on file H, and a
	// file-H pawn shifted east-ish must never land on file A.
	a4 := SqA4.Bb()
	assert.Equal(t, Bitboard(0), ShiftBitboard(a4, West))
	assert.Equal(t, Bitboard(0), ShiftBitboard(a4, Southwest))
	assert.Equal(t, Bitboard(0), ShiftBitboard(a4, Northwest))

	h4 := SqH4.Bb()
	assert.Equal(t, Bitboard(0), ShiftBitboard(h4, East))
	assert.Equal(t, Bitboard(0), ShiftBitboard(h4, Northeast))
	assert.Equal(t, Bitboard(0), ShiftBitboard(h4, Southeast))
}

func TestShiftBitboardNorthSouth(t *testing.T) {
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(SqE4.Bb(), North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(SqE4.Bb(), South))
}

func TestPushPopSquare(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(SqD4)
	b = b.PushSquare(SqF6)
	assert.True(t, b.Has(SqD4))
	assert.True(t, b.Has(SqF6))
	assert.Equal(t, 2, b.PopCount())

	b = b.PopSquare(SqD4)
	assert.False(t, b.Has(SqD4))
	assert.Equal(t, 1, b.PopCount())
}

func TestPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	first := b.PopLsb()
	assert.Equal(t, SqA1, first)
	second := b.PopLsb()
	assert.Equal(t, SqH8, second)
	assert.Equal(t, Bitboard(0), b)
	assert.Equal(t, SqNone, b.PopLsb())
}

func TestKingPseudoAttacksCorner(t *testing.T) {
	attacks := GetPseudoAttacks(King, SqA1)
	assert.Equal(t, 3, attacks.PopCount())
	assert.True(t, attacks.Has(SqA2))
	assert.True(t, attacks.Has(SqB1))
	assert.True(t, attacks.Has(SqB2))
}

func TestKnightPseudoAttacksCenter(t *testing.T) {
	attacks := GetPseudoAttacks(Knight, SqD4)
	assert.Equal(t, 8, attacks.PopCount())
}

func TestKnightPseudoAttacksCorner(t *testing.T) {
	attacks := GetPseudoAttacks(Knight, SqA1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(SqB3))
	assert.True(t, attacks.Has(SqC2))
}

func TestKnightPseudoAttacksOppositeCorner(t *testing.T) {
	attacks := GetPseudoAttacks(Knight, SqH1)
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(SqF2))
	assert.True(t, attacks.Has(SqG3))
}

func TestKnightPseudoAttacksNearEdgeNoWraparound(t *testing.T) {
	// b1 must never reach h1: that wraparound was the regression this
	// test guards against.
	attacks := GetPseudoAttacks(Knight, SqB1)
	assert.Equal(t, 3, attacks.PopCount())
	assert.True(t, attacks.Has(SqA3))
	assert.True(t, attacks.Has(SqC3))
	assert.True(t, attacks.Has(SqD2))
	assert.False(t, attacks.Has(SqH1))
}

func TestPawnAttacks(t *testing.T) {
	white := GetPawnAttacks(White, SqD4)
	assert.True(t, white.Has(SqC5))
	assert.True(t, white.Has(SqE5))
	assert.Equal(t, 2, white.PopCount())

	black := GetPawnAttacks(Black, SqD4)
	assert.True(t, black.Has(SqC3))
	assert.True(t, black.Has(SqE3))
}

func TestRayStopsAtEdge(t *testing.T) {
	ray := SqA1.Ray(North)
	assert.Equal(t, 7, ray.PopCount())
	assert.True(t, ray.Has(SqA8))
	assert.False(t, ray.Has(SqA1))
}
