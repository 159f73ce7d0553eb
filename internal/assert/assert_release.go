// +build !debug

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

// Package assert lets invariant checks be written inline without any
// runtime cost in release builds: the Go compiler eliminates the call
// entirely once DEBUG is the untyped constant false.
package assert

// DEBUG gates whether Assert actually evaluates its condition.
const DEBUG = false

// Assert panics with msg if test is false. Callers should still guard
// calls with "if assert.DEBUG" so argument expressions with side
// effects or cost (e.g. a.String()) are never evaluated in release mode:
//  if assert.DEBUG {
//    assert.Assert(king.IsValid(), "no king of color %s on board", c)
//  }
func Assert(test bool, msg string, a ...interface{}) {}
