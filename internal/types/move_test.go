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

func TestMoveIsCaptureIsPromotion(t *testing.T) {
	quiet := Move{PieceKind: Pawn, From: SqE2, To: SqE4}
	assert.False(t, quiet.IsCapture())
	assert.False(t, quiet.IsPromotion())

	capture := Move{PieceKind: Knight, From: SqC3, To: SqD5, Captured: Pawn}
	assert.True(t, capture.IsCapture())

	promo := Move{PieceKind: Pawn, From: SqE7, To: SqE8, Promotion: Queen}
	assert.True(t, promo.IsPromotion())
}

func TestMoveStringUci(t *testing.T) {
	assert.Equal(t, "e2e4", Move{From: SqE2, To: SqE4}.StringUci())
	assert.Equal(t, "e7e8q", Move{From: SqE7, To: SqE8, Promotion: Queen}.StringUci())
	assert.Equal(t, "e7e8n", Move{From: SqE7, To: SqE8, Promotion: Knight}.StringUci())
}
