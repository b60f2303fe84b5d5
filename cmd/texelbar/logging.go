// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelbar/logging.go
// Summary: Routes the standard logger away from the terminal the UI owns.

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/framegrace/texelbar/config"
	"golang.org/x/term"
)

// setupLogging points the standard logger at path, or at the default log
// file when stderr is the terminal tcell draws on.
func setupLogging(path string, verbose bool) (func(), error) {
	flags := log.LstdFlags | log.Lmicroseconds
	if verbose {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)

	if path == "" {
		if !term.IsTerminal(int(os.Stderr.Fd())) {
			return func() {}, nil
		}
		root, err := config.Root()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(root, "logs", "texelbar.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	return func() {
		log.SetOutput(os.Stderr)
		_ = file.Close()
	}, nil
}
