// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMemoryStatusExLayout(t *testing.T) {
	var ms memoryStatusEx
	require.Equal(t, uintptr(64), unsafe.Sizeof(ms))
	require.Equal(t, uintptr(8), unsafe.Offsetof(ms.TotalPhys))
	require.Equal(t, uintptr(16), unsafe.Offsetof(ms.AvailPhys))
}

func TestQueryMemoryStatusWindows(t *testing.T) {
	ms := queryMemoryStatus()
	require.NotZero(t, ms.TotalPhys)
	require.LessOrEqual(t, ms.AvailPhys, ms.TotalPhys)
}
