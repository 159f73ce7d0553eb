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

// Package movegen generates pseudo-legal and legal moves for a board and
// answers attack queries. A Generator borrows a *board.Board read-only
// for the duration of a generation call; it must not outlive the board.
package movegen

import (
	"github.com/paulmialane/chessmg/internal/board"
	"github.com/paulmialane/chessmg/internal/magic"
	. "github.com/paulmialane/chessmg/internal/types"
)

// promotionKinds lists the four pieces a pawn may promote to, in the
// order promotion moves are emitted.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// Generator produces moves for the board it wraps.
type Generator struct {
	b *board.Board
}

// New wraps b for move generation.
func New(b *board.Board) *Generator {
	return &Generator{b: b}
}

// PseudoMoves enumerates every pseudo-legal move for the side to move:
// not yet checked for leaving the mover's own king in check, nor (for
// castling) for crossing an attacked square.
func (g *Generator) PseudoMoves() []Move {
	moves := make([]Move, 0, 48)
	moves = g.pawnMoves(moves)
	moves = g.knightMoves(moves)
	moves = g.sliderMoves(moves, Bishop)
	moves = g.sliderMoves(moves, Rook)
	moves = g.sliderMoves(moves, Queen)
	moves = g.kingMoves(moves)
	return moves
}

// LegalMoves filters PseudoMoves down to moves that do not leave the
// mover's own king attacked, applying the extra castling-through-check
// rule along the way.
func (g *Generator) LegalMoves() []Move {
	pseudo := g.PseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	us := g.b.ToMove()
	them := us.Flip()

	for _, m := range pseudo {
		if m.Captured == King {
			continue
		}
		if m.Castling && !g.castlingPathIsSafe(m, them) {
			continue
		}
		clone := g.b.Clone()
		clone.Apply(m)
		if IsAttacked(clone, clone.KingSquare(us), them) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

func (g *Generator) castlingPathIsSafe(m Move, them Color) bool {
	for _, sq := range castlingPath(m.To) {
		if IsAttacked(g.b, sq, them) {
			return false
		}
	}
	return true
}

func castlingPath(kingTo Square) []Square {
	switch kingTo {
	case SqG1:
		return []Square{SqE1, SqF1, SqG1}
	case SqC1:
		return []Square{SqE1, SqD1, SqC1}
	case SqG8:
		return []Square{SqE8, SqF8, SqG8}
	case SqC8:
		return []Square{SqE8, SqD8, SqC8}
	default:
		return nil
	}
}

func (g *Generator) pawnMoves(moves []Move) []Move {
	us := g.b.ToMove()
	them := us.Flip()
	pawns := g.b.PieceBb(us, Pawn)
	empty := ^g.b.OccupancyAll()
	enemy := g.b.Occupancy(them)
	push := us.PawnPushDirection()

	single := ShiftBitboard(pawns, push) & empty
	moves = g.emitPawnTargets(moves, single, -push, false, false)

	doubleOrigins := pawns & us.StartRankBb()
	afterSingle := ShiftBitboard(doubleOrigins, push) & empty
	double := ShiftBitboard(afterSingle, push) & empty & us.DoublePushRankBb()
	moves = g.emitDoublePawnPushes(moves, double, push)

	left := push + West
	right := push + East

	leftCaps := ShiftBitboard(pawns, left) & enemy
	moves = g.emitPawnTargets(moves, leftCaps, -left, false, false)
	rightCaps := ShiftBitboard(pawns, right) & enemy
	moves = g.emitPawnTargets(moves, rightCaps, -right, false, false)

	if epMask := g.b.EpMask(); epMask != 0 {
		leftEp := ShiftBitboard(pawns, left) & epMask
		moves = g.emitPawnTargets(moves, leftEp, -left, false, true)
		rightEp := ShiftBitboard(pawns, right) & epMask
		moves = g.emitPawnTargets(moves, rightEp, -right, false, true)
	}

	return moves
}

// emitPawnTargets walks the set bits of targets, each reached from
// from = to.To(backToFrom), and appends the resulting move(s): four
// promotion moves if to is on the mover's last rank, one move otherwise.
func (g *Generator) emitPawnTargets(moves []Move, targets Bitboard, backToFrom Direction, doublePush, enPassant bool) []Move {
	us := g.b.ToMove()
	promRank := us.PromotionRankBb()

	for targets != 0 {
		to := targets.PopLsb()
		from := to.To(backToFrom)

		captured := KtNone
		if enPassant {
			captured = Pawn
		} else if kt, _, ok := g.b.PieceAt(to); ok {
			captured = kt
		}

		base := Move{
			PieceKind:  Pawn,
			PieceColor: us,
			From:       from,
			To:         to,
			Captured:   captured,
			DoublePush: doublePush,
			EnPassant:  enPassant,
		}

		if promRank.Has(to) {
			for _, pk := range promotionKinds {
				m := base
				m.Promotion = pk
				moves = append(moves, m)
			}
			continue
		}
		moves = append(moves, base)
	}
	return moves
}

// emitDoublePawnPushes walks targets (already filtered to the mover's
// double-push rank) and reconstructs from by stepping back two single
// squares; Square.To only accepts the 8 canonical single-step
// directions, so the two-square back-hop is chained rather than taken
// in one shot.
func (g *Generator) emitDoublePawnPushes(moves []Move, targets Bitboard, push Direction) []Move {
	us := g.b.ToMove()
	back := -push

	for targets != 0 {
		to := targets.PopLsb()
		from := to.To(back).To(back)

		moves = append(moves, Move{
			PieceKind:  Pawn,
			PieceColor: us,
			From:       from,
			To:         to,
			DoublePush: true,
		})
	}
	return moves
}

func (g *Generator) knightMoves(moves []Move) []Move {
	us := g.b.ToMove()
	knights := g.b.PieceBb(us, Knight)
	friendly := g.b.Occupancy(us)

	for knights != 0 {
		from := knights.PopLsb()
		targets := GetPseudoAttacks(Knight, from) &^ friendly
		moves = g.emitSimpleTargets(moves, Knight, from, targets)
	}
	return moves
}

func (g *Generator) kingMoves(moves []Move) []Move {
	us := g.b.ToMove()
	from := g.b.KingSquare(us)
	friendly := g.b.Occupancy(us)

	targets := GetPseudoAttacks(King, from) &^ friendly
	moves = g.emitSimpleTargets(moves, King, from, targets)

	rights := g.b.Castling()
	occ := g.b.OccupancyAll()

	if rights.Has(KingsideFor(us)) && g.rookAtCorner(us, true) && betweenKingsideBb(us)&occ == 0 {
		moves = append(moves, Move{PieceKind: King, PieceColor: us, From: from, To: kingsideKingTo(us), Castling: true})
	}
	if rights.Has(QueensideFor(us)) && g.rookAtCorner(us, false) && betweenQueensideBb(us)&occ == 0 {
		moves = append(moves, Move{PieceKind: King, PieceColor: us, From: from, To: queensideKingTo(us), Castling: true})
	}
	return moves
}

// rookAtCorner reports whether the rook required for the given castling
// side is still on its starting corner square.
func (g *Generator) rookAtCorner(us Color, kingside bool) bool {
	var sq Square
	switch {
	case us == White && kingside:
		sq = SqH1
	case us == White && !kingside:
		sq = SqA1
	case us == Black && kingside:
		sq = SqH8
	default:
		sq = SqA8
	}
	kt, c, ok := g.b.PieceAt(sq)
	return ok && kt == Rook && c == us
}

func betweenKingsideBb(c Color) Bitboard {
	if c == White {
		return SqF1.Bb() | SqG1.Bb()
	}
	return SqF8.Bb() | SqG8.Bb()
}

func betweenQueensideBb(c Color) Bitboard {
	if c == White {
		return SqB1.Bb() | SqC1.Bb() | SqD1.Bb()
	}
	return SqB8.Bb() | SqC8.Bb() | SqD8.Bb()
}

func kingsideKingTo(c Color) Square {
	if c == White {
		return SqG1
	}
	return SqG8
}

func queensideKingTo(c Color) Square {
	if c == White {
		return SqC1
	}
	return SqC8
}

func (g *Generator) sliderMoves(moves []Move, kind Kind) []Move {
	us := g.b.ToMove()
	pieces := g.b.PieceBb(us, kind)
	friendly := g.b.Occupancy(us)
	occ := g.b.OccupancyAll()

	for pieces != 0 {
		from := pieces.PopLsb()
		targets := magic.Attacks(kind, from, occ) &^ friendly
		moves = g.emitSimpleTargets(moves, kind, from, targets)
	}
	return moves
}

// emitSimpleTargets appends one non-pawn, non-castling move per bit of
// targets, reading any captured piece off the board.
func (g *Generator) emitSimpleTargets(moves []Move, kind Kind, from Square, targets Bitboard) []Move {
	us := g.b.ToMove()
	for targets != 0 {
		to := targets.PopLsb()
		captured := KtNone
		if kt, _, ok := g.b.PieceAt(to); ok {
			captured = kt
		}
		moves = append(moves, Move{
			PieceKind:  kind,
			PieceColor: us,
			From:       from,
			To:         to,
			Captured:   captured,
		})
	}
	return moves
}
