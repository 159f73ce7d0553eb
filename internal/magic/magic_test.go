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

package magic

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/paulmialane/chessmg/internal/types"
)

// TestMagicAgreesWithSlidingAttackReference checks, for every square and
// every subset of its relevant blockers, that the magic-hashed Attacks
// result matches the slow ray-walking oracle exactly. This is the
// correctness property the whole magic scheme rests on: the hash may
// alias two different occupancies onto the same index only when they
// demand the same attack set (a constructive collision).
func TestMagicAgreesWithSlidingAttackReference(t *testing.T) {
	EnsureInit("")

	cases := []struct {
		name       string
		kind       Kind
		directions [4]Direction
	}{
		{"rook", Rook, rookDirections},
		{"bishop", Bishop, bishopDirections},
	}

	for _, c := range cases {
		for sq := SqA1; sq < SqNone; sq++ {
			mask := relevantMask(c.directions, sq)
			for _, occ := range enumerateSubsets(mask) {
				want := slidingAttack(c.directions, sq, occ)
				got := Attacks(c.kind, sq, occ)
				require.Equalf(t, want, got, "%s at %s with occupancy %#x", c.name, sq, uint64(occ))
			}
		}
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	EnsureInit("")
	sq := SqD4
	occ := SqD1.Bb() | SqA4.Bb() | SqG7.Bb()
	want := Attacks(Rook, sq, occ) | Attacks(Bishop, sq, occ)
	require.Equal(t, want, Attacks(Queen, sq, occ))
}

func TestAttacksOnEmptyBoardMatchesDefault(t *testing.T) {
	EnsureInit("")
	for sq := SqA1; sq < SqNone; sq++ {
		entry := EntryFor(Rook, sq)
		require.Equal(t, entry.Default, entry.Attacks(0))
	}
}

func TestEntryIndexIgnoresBitsOutsideMask(t *testing.T) {
	EnsureInit("")
	entry := EntryFor(Bishop, SqD4)
	require.Equal(t, entry.Index(entry.Mask), entry.Index(entry.Mask|SqA1.Bb()|SqH8.Bb()))
}
