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

// Command perft is a small driver that runs the move generator's perft
// oracle from the command line, following the teacher's StartPerft CLI
// idiom (flags for FEN/depth, formatted diagnostics printed to stdout).
package main

import (
	"flag"
	"os"

	"github.com/paulmialane/chessmg/internal/board"
	"github.com/paulmialane/chessmg/internal/config"
	"github.com/paulmialane/chessmg/internal/magic"
	"github.com/paulmialane/chessmg/internal/mgglog"
	"github.com/paulmialane/chessmg/internal/movegen"
)

func main() {
	fen := flag.String("fen", board.StartFen, "FEN of the position to run perft on")
	depth := flag.Int("depth", 5, "perft depth")
	flag.Parse()

	config.Setup()
	log := mgglog.GetLog()

	magic.EnsureInit(config.Settings.Magic.TablePath)

	p := movegen.NewPerft()
	if _, err := p.Run(*fen, *depth); err != nil {
		log.Errorf("invalid position: %v", err)
		os.Exit(1)
	}
}
