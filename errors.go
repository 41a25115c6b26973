// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import "github.com/cockroachdb/errors"

var (
	// ErrUnsupported is returned by services the current platform cannot provide.
	ErrUnsupported = errors.New("pal: not supported on this platform")

	ErrEmptyPath      = errors.New("pal: empty library path")
	ErrLibraryClosed  = errors.New("pal: library already closed")
	ErrSymbolNotFound = errors.New("pal: symbol not found")

	ErrEmptyAppName = errors.New("pal: empty application name")
	ErrNoPrefRoot   = errors.New("pal: no preference root available")

	ErrNetInitialized = errors.New("pal: network subsystem already initialized")
	ErrNetNotReady    = errors.New("pal: network subsystem not initialized")
)
