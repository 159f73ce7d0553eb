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

// Package magic implements the magic-bitboard engine that resolves
// rook and bishop attack sets in O(1) given a blocker occupancy, without
// walking rays at query time. The generation approach ("fancy" magic
// bitboards with constructive-collision tolerance) follows the teacher's
// internal/types/magic.go; the table shape (a sparse map plus a
// blockers-free default attack) follows the data model the sparse
// HashMap-based magic.rs in this project's original Rust sources used.
package magic

import (
	. "github.com/paulmialane/chessmg/internal/types"
)

// Entry holds the magic-hashing parameters and attack table for one
// square and one sliding Kind (Bishop or Rook).
type Entry struct {
	Mask    Bitboard
	Magic   uint64
	Shift   uint
	Table   map[uint64]Bitboard
	Default Bitboard // table value for the all-empty-board occupancy
}

// Index computes the hash index for a blocker occupancy, masking it to
// the entry's relevant-blocker mask first.
func (e *Entry) Index(occupied Bitboard) uint64 {
	occ := occupied & e.Mask
	return (uint64(occ) * e.Magic) >> e.Shift
}

// Attacks returns the attack set for the given occupancy, masking it to
// the entry's relevant blockers first. Missing indices (which cannot
// occur for a correctly generated table, but are defended against)
// fall back to Default.
func (e *Entry) Attacks(occupied Bitboard) Bitboard {
	idx := e.Index(occupied)
	if a, ok := e.Table[idx]; ok {
		return a
	}
	return e.Default
}

var (
	rookTable   [SqLength]Entry
	bishopTable [SqLength]Entry
	initDone    bool
)

var rookDirections = [4]Direction{North, East, South, West}
var bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// EntryFor returns the magic Entry for Rook or Bishop on the given
// square. Any other kind, Queen included, panics: a queen has no entry
// of its own (Attacks combines the rook and bishop entries for it).
func EntryFor(kind Kind, sq Square) *Entry {
	switch kind {
	case Rook:
		return &rookTable[sq]
	case Bishop:
		return &bishopTable[sq]
	default:
		panic("magic: not a sliding kind")
	}
}

// Attacks returns the attack bitboard for a rook, bishop, or queen on sq
// given the board occupancy, including squares occupied by friendly
// pieces (callers mask those out themselves; see spec's note that
// is_attacked deliberately wants them included). The tables are built
// lazily on first call via EnsureInit("").
func Attacks(kind Kind, sq Square, occupied Bitboard) Bitboard {
	EnsureInit("")
	switch kind {
	case Rook:
		return rookTable[sq].Attacks(occupied)
	case Bishop:
		return bishopTable[sq].Attacks(occupied)
	case Queen:
		return rookTable[sq].Attacks(occupied) | bishopTable[sq].Attacks(occupied)
	default:
		panic("magic: not a sliding kind")
	}
}

// Init builds both 64-entry magic tables if they have not been built
// yet. It is idempotent and safe to call more than once; see EnsureInit
// for the lazily-initialized, concurrency-safe entry point.
func Init() {
	if initDone {
		return
	}
	generate(Rook, rookDirections, &rookTable)
	generate(Bishop, bishopDirections, &bishopTable)
	initDone = true
}

// slidingAttack is the reference oracle: it walks each direction one
// step at a time, including the destination square, and stops the ray
// immediately after including a blocking square.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			attack = attack.PushSquare(next)
			s = next
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

func relevantMask(directions [4]Direction, sq Square) Bitboard {
	edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())
	return slidingAttack(directions, sq, 0) &^ edges
}

// enumerateSubsets returns every subset of mask via the Carry-Rippler trick.
func enumerateSubsets(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<uint(mask.PopCount()))
	var b Bitboard
	for {
		subsets = append(subsets, b)
		b = (b - mask) & mask
		if b == 0 {
			break
		}
	}
	return subsets
}

// generate finds magics for every square for one sliding kind and fills
// table. Search uses sparse-random candidates (AND of three draws) and
// tolerates constructive collisions (two occupancies landing on the
// same index are fine as long as they demand the same attack set).
func generate(kind Kind, directions [4]Direction, table *[SqLength]Entry) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	for sq := SqA1; sq < SqNone; sq++ {
		mask := relevantMask(directions, sq)
		shift := uint(64 - mask.PopCount())
		occupancies := enumerateSubsets(mask)
		references := make([]Bitboard, len(occupancies))
		for i, occ := range occupancies {
			references[i] = slidingAttack(directions, sq, occ)
		}

		rng := newPrng(seeds[sq.RankOf()])

	search:
		for {
			candidate := rng.sparseRand()
			e := Entry{Mask: mask, Magic: candidate, Shift: shift, Table: make(map[uint64]Bitboard, len(occupancies))}
			for i, occ := range occupancies {
				idx := e.Index(occ)
				if existing, ok := e.Table[idx]; ok {
					if existing != references[i] {
						continue search // destructive collision, try another magic
					}
					continue // constructive collision, same attack: fine
				}
				e.Table[idx] = references[i]
			}
			e.Default = e.Table[e.Index(0)]
			table[sq] = e
			break
		}
	}
}

// prng is Sebastiano Vigna's xorshift64star generator, used to draw
// sparse (low-popcount) magic candidates so the search converges fast.
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng { return &prng{s: seed} }

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand ANDs three draws together so the result has roughly an
// eighth of its bits set on average, which is what makes magic search
// converge quickly.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
