// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build darwin

package pal

import (
	"golang.org/x/exp/slog"
	"golang.org/x/sys/unix"
)

func queryMemoryStatus() MemoryStatus {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		Logger().Debug("sysctl hw.memsize failed", slog.Any("error", err))
		return MemoryStatus{}
	}

	free, errFree := unix.SysctlUint32("vm.page_free_count")
	purgeable, errPurge := unix.SysctlUint32("vm.page_purgeable_count")
	if errFree != nil {
		// Same rough estimate the C client always used.
		Logger().Debug("sysctl vm.page_free_count failed", slog.Any("error", errFree))
		return MemoryStatus{TotalPhys: total, AvailPhys: total / 2}
	}
	if errPurge != nil {
		purgeable = 0
	}
	pages := uint64(free) + uint64(purgeable)
	return MemoryStatus{TotalPhys: total, AvailPhys: pages * uint64(unix.Getpagesize())}
}
