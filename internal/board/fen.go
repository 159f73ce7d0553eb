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
	"fmt"
	"strconv"
	"strings"

	. "github.com/paulmialane/chessmg/internal/types"
)

// InvalidFEN reports why a FEN string could not be parsed.
type InvalidFEN struct {
	Reason string
}

func (e *InvalidFEN) Error() string {
	return "invalid FEN: " + e.Reason
}

func invalidFen(format string, a ...interface{}) error {
	return &InvalidFEN{Reason: fmt.Sprintf(format, a...)}
}

// setupFromFen parses fen per the four-or-more-field FEN grammar: piece
// placement, active color, castling rights, en-passant target, and
// (ignored) halfmove/fullmove counters.
func (b *Board) setupFromFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return invalidFen("expected at least 4 fields, got %d", len(fields))
	}

	if err := b.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		b.toMove = White
	case "b":
		b.toMove = Black
	default:
		return invalidFen("invalid active color %q", fields[1])
	}

	b.castling = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				b.castling.Add(CastlingWhiteOO)
			case 'Q':
				b.castling.Add(CastlingWhiteOOO)
			case 'k':
				b.castling.Add(CastlingBlackOO)
			case 'q':
				b.castling.Add(CastlingBlackOOO)
			default:
				return invalidFen("invalid castling rights character %q", c)
			}
		}
	}

	b.ep = SqNone
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return invalidFen("invalid en-passant square %q", fields[3])
		}
		b.ep = sq
	}

	// halfmove/fullmove counters, when present, are parsed only to
	// validate they are well-formed; their values are not retained.
	if len(fields) >= 5 {
		if _, err := strconv.Atoi(fields[4]); err != nil {
			return invalidFen("invalid halfmove clock %q", fields[4])
		}
	}
	if len(fields) >= 6 {
		if _, err := strconv.Atoi(fields[5]); err != nil {
			return invalidFen("invalid fullmove number %q", fields[5])
		}
	}

	return nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return invalidFen("expected 8 ranks, got %d", len(ranks))
	}

	for col := White; col <= Black; col++ {
		for kt := King; kt < KtLength; kt++ {
			b.pieces[col][kt] = 0
		}
	}

	// FEN ranks run 8 down to 1.
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			piece := PieceFromChar(string(ch))
			if piece == PieceNone {
				return invalidFen("invalid piece character %q", ch)
			}
			if !file.IsValid() {
				return invalidFen("rank %d does not sum to 8 files", 8-i)
			}
			sq := SquareOf(file, rank)
			b.setPiece(piece.ColorOf(), piece.KindOf(), sq)
			file++
		}
		if file != FileNone {
			return invalidFen("rank %d does not sum to 8 files", 8-i)
		}
	}
	return nil
}

// Fen renders the board back into Forsyth-Edwards Notation. Halfmove
// clock and fullmove number, which the board does not track, are
// always emitted as "0 1".
func (b *Board) Fen() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank(r))
			kt, c, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(MakePiece(c, kt).Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > int(Rank1) {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.toMove.String())
	sb.WriteString(" ")
	sb.WriteString(b.castling.String())
	sb.WriteString(" ")
	sb.WriteString(b.ep.String())
	sb.WriteString(" 0 1")
	return sb.String()
}

// String renders the board as an 8x8 ASCII diagram for debugging and
// test-failure output; it is not part of the external interface.
func (b *Board) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		sb.WriteString(Rank(r).String())
		sb.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank(r))
			kt, c, ok := b.PieceAt(sq)
			if !ok {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(MakePiece(c, kt).Char())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
