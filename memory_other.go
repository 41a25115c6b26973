// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !linux && !darwin && !windows && !freebsd && !netbsd && !openbsd && !dragonfly

package pal

func queryMemoryStatus() MemoryStatus {
	return MemoryStatus{}
}
