// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: panel/filter.go
// Summary: Separates buildable widgets from widgets with configuration errors.

package panel

import "log"

// Partition splits builders into those safe to build and those carrying
// build errors, keeping input order in both. Every error message is logged
// on its own line, prefixed by the widget name.
func Partition(builders []Builder, logger *log.Logger) (buildable, failed []Builder) {
	if logger == nil {
		logger = log.Default()
	}
	for _, b := range builders {
		errs := b.BuildErrors()
		if len(errs) == 0 {
			buildable = append(buildable, b)
			continue
		}
		failed = append(failed, b)
		for _, msg := range errs {
			logger.Printf("Panel: error building widget %q: %s", b.Name(), msg)
		}
	}
	return buildable, failed
}
