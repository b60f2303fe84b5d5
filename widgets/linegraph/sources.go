// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/linegraph/sources.go
// Summary: Sample sources for the line graph widget.

package linegraph

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Source produces one sample per call.
type Source func() (float64, error)

var (
	sourcesMu sync.RWMutex
	sources   = map[string]Source{
		"loadavg": loadAverage,
	}
)

// RegisterSource makes a named source available to configured graphs.
func RegisterSource(name string, src Source) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	sources[name] = src
}

func lookupSource(name string) (Source, bool) {
	sourcesMu.RLock()
	defer sourcesMu.RUnlock()
	src, ok := sources[name]
	return src, ok
}

var loadavgPath = "/proc/loadavg"

// loadAverage returns the one-minute load average.
func loadAverage() (float64, error) {
	data, err := os.ReadFile(loadavgPath)
	if err != nil {
		return 0, fmt.Errorf("read load average: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("read load average: empty %s", loadavgPath)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse load average: %w", err)
	}
	return v, nil
}
