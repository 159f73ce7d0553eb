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
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/paulmialane/chessmg/internal/types"
)

func TestNewIsStartingPosition(t *testing.T) {
	b := New()
	require.Equal(t, StartFen, b.Fen())
	require.Equal(t, White, b.ToMove())
	require.Equal(t, SqNone, b.EnPassantTarget())
	require.True(t, b.Castling().Has(CastlingWhiteOO))
	require.True(t, b.Castling().Has(CastlingBlackOOO))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		b, err := NewFromFen(fen)
		require.NoError(t, err)
		require.Equal(t, fen, b.Fen())
	}
}

func TestNewFromFenRejectsGarbage(t *testing.T) {
	_, err := NewFromFen("not a fen")
	require.Error(t, err)
	var invalid *InvalidFEN
	require.ErrorAs(t, err, &invalid)
}

func TestDisjointPieceBitboardsAndSingleKing(t *testing.T) {
	b := New()
	var seen Bitboard
	for c := White; c <= Black; c++ {
		for kt := King; kt < KtLength; kt++ {
			bb := b.PieceBb(c, kt)
			require.Zero(t, bb&seen, "pieces must occupy disjoint squares")
			seen |= bb
		}
	}
	require.Equal(t, 1, b.PieceBb(White, King).PopCount())
	require.Equal(t, 1, b.PieceBb(Black, King).PopCount())
}

func TestApplyQuietPawnPush(t *testing.T) {
	b := New()
	b.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqE2, To: SqE4, DoublePush: true})
	require.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", b.Fen())
	require.Equal(t, Black, b.ToMove())
	require.Equal(t, SqE3, b.EnPassantTarget())
}

func TestApplyEnPassantCapture(t *testing.T) {
	b := New()
	b.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqE2, To: SqE4, DoublePush: true})
	b.Apply(Move{PieceKind: Pawn, PieceColor: Black, From: SqD7, To: SqD5, DoublePush: true})
	b.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqE4, To: SqD5, Captured: Pawn})
	b.Apply(Move{PieceKind: Pawn, PieceColor: Black, From: SqC7, To: SqC5, DoublePush: true})

	before := b.Clone()
	b.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqD5, To: SqC6, Captured: Pawn, EnPassant: true})

	kt, c, ok := b.PieceAt(SqC5)
	require.False(t, ok, "captured pawn must be removed from its own square")
	_ = kt
	_ = c
	kt, c, ok = b.PieceAt(SqC6)
	require.True(t, ok)
	require.Equal(t, Pawn, kt)
	require.Equal(t, White, c)
	require.Equal(t, SqNone, b.EnPassantTarget())
	require.NotEqual(t, before.Fen(), b.Fen())
}

func TestApplyPromotion(t *testing.T) {
	b, err := NewFromFen("8/4P3/8/8/8/8/4k3/4K3 w - - 0 1")
	require.NoError(t, err)
	b.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqE7, To: SqE8, Promotion: Queen})

	kt, c, ok := b.PieceAt(SqE8)
	require.True(t, ok)
	require.Equal(t, Queen, kt)
	require.Equal(t, White, c)
	require.Zero(t, b.PieceBb(White, Pawn))
}

func TestApplyKingsideCastlingMovesRook(t *testing.T) {
	b, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	b.Apply(Move{PieceKind: King, PieceColor: White, From: SqE1, To: SqG1, Castling: true})

	kt, c, ok := b.PieceAt(SqG1)
	require.True(t, ok)
	require.Equal(t, King, kt)
	require.Equal(t, White, c)

	kt, c, ok = b.PieceAt(SqF1)
	require.True(t, ok)
	require.Equal(t, Rook, kt)
	require.Equal(t, White, c)

	require.False(t, b.Castling().Has(CastlingWhiteOO))
	require.False(t, b.Castling().Has(CastlingWhiteOOO))
	require.True(t, b.Castling().Has(CastlingBlackOO))
}

func TestApplyRookMoveClearsOnlyItsOwnRight(t *testing.T) {
	b, err := NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	b.Apply(Move{PieceKind: Rook, PieceColor: White, From: SqA1, To: SqB1})
	require.False(t, b.Castling().Has(CastlingWhiteOOO))
	require.True(t, b.Castling().Has(CastlingWhiteOO))
}

func TestApplyCapturingRookOnCornerClearsEnemyRight(t *testing.T) {
	b, err := NewFromFen("r3k2r/8/8/8/8/8/7B/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	b.Apply(Move{PieceKind: Bishop, PieceColor: White, From: SqH2, To: SqH8, Captured: Rook})
	require.False(t, b.Castling().Has(CastlingBlackOO))
	require.True(t, b.Castling().Has(CastlingBlackOOO))
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	clone := b.Clone()
	clone.Apply(Move{PieceKind: Pawn, PieceColor: White, From: SqE2, To: SqE4, DoublePush: true})
	require.Equal(t, StartFen, b.Fen(), "mutating a clone must not affect the original")
	require.NotEqual(t, StartFen, clone.Fen())
}
