// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build freebsd || netbsd || openbsd || dragonfly

package pal

import (
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

// Available memory is left unknown: the BSDs expose it through per-kernel
// counters with no common name.
func queryMemoryStatus() MemoryStatus {
	total, err := unix.SysctlUint64("hw.physmem")
	if err != nil {
		Logger().Debug("sysctl hw.physmem failed", slog.Any("error", err))
		return MemoryStatus{}
	}
	return MemoryStatus{TotalPhys: total}
}
