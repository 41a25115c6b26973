// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"io"
	"sync/atomic"

	"golang.org/x/exp/slog"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.NewTextHandler(io.Discard)))
}

// SetLogger installs the logger used to report degradations such as fallback
// paths or unavailable telemetry. A nil logger restores the discarding default.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}
	pkgLogger.Store(logger)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
