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
	"bytes"
	"encoding/gob"
	"os"
	"sync"

	"github.com/paulmialane/chessmg/internal/mgglog"
	. "github.com/paulmialane/chessmg/internal/types"
)

var log = mgglog.GetLog()

var initOnce sync.Once

// EnsureInit guarantees the two 64-entry magic tables are built exactly
// once, regardless of how many goroutines call it; all callers observe
// the fully-built tables afterward. If path is non-empty and a blob
// exists there it is loaded instead of regenerating from scratch; if
// path is non-empty and no blob exists, one is written after generation.
func EnsureInit(path string) {
	initOnce.Do(func() {
		if path != "" {
			if err := load(path); err == nil {
				log.Infof("loaded magic tables from %s", path)
				initDone = true
				return
			}
		}
		Init()
		if path != "" {
			if err := save(path); err != nil {
				log.Warningf("could not persist magic tables to %s: %v", path, err)
			}
		}
	})
}

// blob is the on-disk representation of both magic tables, gob-encoded
// as a single opaque binary file.
type blob struct {
	Rook   [SqLength]Entry
	Bishop [SqLength]Entry
}

func save(path string) error {
	var buf bytes.Buffer
	b := blob{Rook: rookTable, Bishop: bishopTable}
	if err := gob.NewEncoder(&buf).Encode(&b); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var b blob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&b); err != nil {
		return err
	}
	rookTable = b.Rook
	bishopTable = b.Bishop
	return nil
}
