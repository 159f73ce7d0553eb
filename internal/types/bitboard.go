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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set, one bit per square, bit index 8*rank+file.
type Bitboard uint64

// Bb returns the single-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << sq
}

// Has reports whether s is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// PushSquare sets s in b and returns the result.
func (b Bitboard) PushSquare(s Square) Bitboard {
	return b | s.Bb()
}

// PopSquare clears s in b and returns the result.
func (b Bitboard) PopSquare(s Square) Bitboard {
	return b &^ s.Bb()
}

// ShiftBitboard shifts every set bit of b one step in direction d,
// clearing the source file first so bits never wrap across board edges.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		return 0
	}
}

// Lsb returns the square of the least significant set bit, or SqNone if b is 0.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the square of the least significant set bit of
// *b, or SqNone if *b is already 0.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the bitboard as a 64-character binary string.
func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := SqH8; ; sq-- {
		if b.Has(sq) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if sq == SqA1 {
			break
		}
	}
	return sb.String()
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 at the top, for
// debugging and test-failure output only.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		sb.WriteString(Rank(r).String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank(r))
			if b.Has(sq) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Static rank and file masks, and their complements used for
// wraparound-safe shifting (CLEAR_FILE / CLEAR_RANK in the spec).
const (
	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank1Bb Bitboard = 0xFF
	Rank2Bb Bitboard = Rank1Bb << (8 * 1)
	Rank3Bb Bitboard = Rank1Bb << (8 * 2)
	Rank4Bb Bitboard = Rank1Bb << (8 * 3)
	Rank5Bb Bitboard = Rank1Bb << (8 * 4)
	Rank6Bb Bitboard = Rank1Bb << (8 * 5)
	Rank7Bb Bitboard = Rank1Bb << (8 * 6)
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)
)

var fileBb = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBb = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// Ray tables: Ray[d][s] is every square reached stepping from s in
// direction d, repeatedly, to the edge of the board, excluding s.
var rayBb [8][SqLength]Bitboard

// Ray returns the precomputed ray from sq in direction d.
func (sq Square) Ray(d Direction) Bitboard {
	return rayBb[directionIndex(d)][sq]
}

// pseudoAttacks[kind][sq] holds the fixed-step attack pattern for King
// and Knight, independent of occupancy.
var pseudoAttacks [KtLength][SqLength]Bitboard

// pawnAttacks[color][sq] holds the pawn capture pattern for that color.
var pawnAttacks [ColorLength][SqLength]Bitboard

// GetPseudoAttacks returns the precomputed King/Knight attack set from sq.
func GetPseudoAttacks(kt Kind, sq Square) Bitboard {
	return pseudoAttacks[kt][sq]
}

// GetPawnAttacks returns the precomputed pawn-capture attack set from sq
// for the given color.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

func init() {
	initRays()
	initPseudoAttacks()
}

func initRays() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, d := range Directions {
			var ray Bitboard
			cur := sq
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				ray = ray.PushSquare(next)
				cur = next
			}
			rayBb[i][sq] = ray
		}
	}
}

func initPseudoAttacks() {
	for sq := SqA1; sq < SqNone; sq++ {
		// king: union of the eight one-step rays' first square
		var king Bitboard
		for _, d := range Directions {
			if t := sq.To(d); t != SqNone {
				king = king.PushSquare(t)
			}
		}
		pseudoAttacks[King][sq] = king

		// Knight shifts must clear the destination file(s) after
		// shifting, not the source: a wrap-around jump lands on the
		// opposite edge file, and it's that landing file that has to be
		// masked out (unlike ShiftBitboard, which masks the source file
		// before shifting).
		var knight Bitboard
		b := sq.Bb()
		knight |= (b << 17) &^ FileABb
		knight |= (b << 10) &^ (FileABb | FileBBb)
		knight |= (b << 15) &^ FileHBb
		knight |= (b << 6) &^ (FileGBb | FileHBb)
		knight |= (b >> 17) &^ FileHBb
		knight |= (b >> 10) &^ (FileGBb | FileHBb)
		knight |= (b >> 15) &^ FileABb
		knight |= (b >> 6) &^ (FileABb | FileBBb)
		pseudoAttacks[Knight][sq] = knight

		pawnAttacks[White][sq] = ShiftBitboard(b, Northeast) | ShiftBitboard(b, Northwest)
		pawnAttacks[Black][sq] = ShiftBitboard(b, Southeast) | ShiftBitboard(b, Southwest)
	}
}
