// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// MemoryStatus is a physical memory reading in bytes. A zero field means the
// platform could not report it, never that the machine has no memory.
//
// AvailPhys is approximate and its precision varies by platform; it is never
// larger than TotalPhys.
type MemoryStatus struct {
	TotalPhys uint64
	AvailPhys uint64
}

// Known reports whether the total was obtained.
func (m MemoryStatus) Known() bool {
	return m.TotalPhys != 0
}

func (m MemoryStatus) String() string {
	if !m.Known() {
		return "unknown"
	}
	avail := "unknown"
	if m.AvailPhys != 0 {
		avail = humanize.IBytes(m.AvailPhys)
	}
	return fmt.Sprintf("%s available of %s", avail, humanize.IBytes(m.TotalPhys))
}

// QueryMemoryStatus reads total and available physical memory using what the
// OS exposes. It never fails; unavailable values are zero.
func QueryMemoryStatus() MemoryStatus {
	return normalizeMemoryStatus(queryMemoryStatus())
}

func normalizeMemoryStatus(m MemoryStatus) MemoryStatus {
	if m.TotalPhys == 0 {
		return MemoryStatus{}
	}
	if m.AvailPhys > m.TotalPhys {
		m.AvailPhys = m.TotalPhys
	}
	return m
}
