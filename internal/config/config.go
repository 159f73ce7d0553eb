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

// Package config holds globally available configuration variables,
// read from a TOML file if present, falling back to defaults otherwise.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by the config file
	LogLevel = 4

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	// LogLevel, if non-zero, overrides the package-level LogLevel
	// default (an op/go-logging level: 1=error .. 5=debug).
	LogLevel int
	Magic    magicConfiguration
}

// magicConfiguration controls the magic-bitboard engine's lazy
// initialization and optional on-disk table cache.
type magicConfiguration struct {
	// TablePath, when non-empty, is where the two 64-entry magic tables
	// are persisted as a single gob-encoded blob and reloaded from on
	// the next run instead of being regenerated from scratch.
	TablePath string
}

// Setup reads the configuration file and sets Settings from it, or
// leaves the defaults in place if the file is absent or unparseable.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found. Using defaults. (", err, ")")
	}
	if Settings.LogLevel != 0 {
		LogLevel = Settings.LogLevel
	}
	initialized = true
}
