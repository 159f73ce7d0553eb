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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/paulmialane/chessmg/internal/board"
	"github.com/paulmialane/chessmg/internal/mgglog"
)

var out = message.NewPrinter(language.German)
var log = mgglog.GetLog()

// Perft counts leaf nodes of the move tree from a starting position to
// a fixed depth; it is this module's primary correctness oracle.
type Perft struct {
	Nodes    uint64
	stopFlag bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running perft (started in a goroutine) abandon
// its current run at the next opportunity.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// Run performs a perft walk from fen to the given depth and logs a
// summary, following the teacher's StartPerft diagnostic format.
func (p *Perft) Run(fen string, depth int) (uint64, error) {
	p.stopFlag = false
	if depth < 1 {
		depth = 1
	}

	b, err := board.NewFromFen(fen)
	if err != nil {
		return 0, err
	}

	log.Infof("perft depth %d on %s", depth, fen)
	start := time.Now()
	nodes := p.search(b, depth)
	elapsed := time.Since(start)

	if p.stopFlag {
		out.Print("perft stopped\n")
		return 0, nil
	}
	p.Nodes = nodes

	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = (nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds())
	}
	out.Printf("depth %d: %d nodes in %s (%d nps)\n", depth, nodes, elapsed, nps)
	return nodes, nil
}

func (p *Perft) search(b *board.Board, depth int) uint64 {
	if p.stopFlag {
		return 0
	}
	moves := New(b).LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		clone := b.Clone()
		clone.Apply(m)
		total += p.search(clone, depth-1)
	}
	return total
}
