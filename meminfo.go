// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// parseMeminfo reads the Linux /proc/meminfo format. Kernels older than 3.14
// lack MemAvailable; it is then approximated by MemFree + Buffers + Cached.
func parseMeminfo(r io.Reader) (MemoryStatus, error) {
	fields := make(map[string]uint64)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, rest, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			continue
		}
		v, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		if len(parts) > 1 && strings.EqualFold(parts[1], "kB") {
			v *= 1024
		}
		fields[strings.TrimSpace(key)] = v
	}
	if err := sc.Err(); err != nil {
		return MemoryStatus{}, errors.Wrap(err, "read meminfo")
	}

	total, ok := fields["MemTotal"]
	if !ok {
		return MemoryStatus{}, errors.New("meminfo: no MemTotal entry")
	}
	avail, ok := fields["MemAvailable"]
	if !ok {
		avail = fields["MemFree"] + fields["Buffers"] + fields["Cached"]
	}
	return MemoryStatus{TotalPhys: total, AvailPhys: avail}, nil
}
