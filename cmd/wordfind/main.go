// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfind CLI.

wordfind reads a plain text corpus, builds a character trie over every word in
it and answers lookups: an exact hit reports how often the word was used, a
partial hit suggests the three most used words starting with the matched
prefix and anything else is a miss.

# Usage

Start the interactive loop over the default corpus:

	wordfind

Use another corpus and enable debug logging:

	wordfind -f books/moby.txt -d

Time a single query, repeated 500 times (default from config):

	wordfind bench accomp 500

Serve queries over msgpack on stdin/stdout for other programs:

	wordfind serve

# Configuration

Options live in a TOML file created with defaults on first run, inside the
user config dir (~/.config/wordfind/config.toml on Linux):

	[query]
	suggestions = 3

	[corpus]
	path = "text/text.txt"

	[cli]
	exit_word = "exit"
	color = true
	show_timing = false

	[bench]
	default_repeats = 1000

WORDFIND_CONFIG and WORDFIND_CORPUS, also read from a .env file in the
working dir, override the config path and the corpus path. Flags override
both.

# Flags

	-f, --corpus string   Corpus text file
	    --config string   Config file path
	-d, --debug           Toggle debug mode
	    --no-color        Disable styled output
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	Version = "0.1.0"
	AppName = "wordfind"
	gh      = "https://github.com/bastiangx/wordfind"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to load .env file: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
