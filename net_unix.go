// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows

package pal

// BSD sockets need no process-wide startup.
func platformSocketStartup() error { return nil }

func platformSocketCleanup() {}
