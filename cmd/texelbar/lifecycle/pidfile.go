// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelbar/lifecycle/pidfile.go
// Summary: PID file guard keeping a single texelbar per config directory.

package lifecycle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrAlreadyRunning is returned by Acquire when another live process owns
// the PID file.
var ErrAlreadyRunning = errors.New("texelbar is already running")

// PIDFile guards a single running instance.
type PIDFile struct {
	path string
	held bool
}

// NewPIDFile returns a guard for path. Nothing touches the disk until
// Acquire.
func NewPIDFile(path string) *PIDFile {
	return &PIDFile{path: path}
}

func (p *PIDFile) Path() string { return p.path }

// Acquire records the current process. A stale file left by a dead process
// is replaced.
func (p *PIDFile) Acquire() error {
	if pid, err := p.Read(); err == nil && pid != os.Getpid() && processAlive(pid) {
		return fmt.Errorf("%w (pid %d, %s)", ErrAlreadyRunning, pid, p.path)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("create PID directory: %w", err)
	}
	content := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(p.path, []byte(content), 0600); err != nil {
		return fmt.Errorf("write PID file: %w", err)
	}
	p.held = true
	return nil
}

// Release removes the file if this guard wrote it.
func (p *PIDFile) Release() error {
	if !p.held {
		return nil
	}
	p.held = false
	err := os.Remove(p.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Read returns the PID stored in the file.
func (p *PIDFile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID format: %w", err)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("invalid PID value: %d", pid)
	}
	return pid, nil
}

// processAlive sends signal 0, which works on Linux and macOS.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
