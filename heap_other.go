// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build !windows && !darwin && !linux && !freebsd

package pal

func newNativeHeap() (heapBackend, error) {
	return newGoHeap(), nil
}
