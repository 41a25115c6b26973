// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package pal is a small platform abstraction layer that lets the same calling
// code run unmodified on Windows, macOS, Linux and other POSIX systems.
//
// It covers the handful of OS services a native game client or plugin host
// needs and that differ per platform:
//
//	// Capability detection
//	fmt.Println(pal.Current(), pal.LibraryName("plugin")) // "linux libplugin.so"
//
//	// Zero-initialized native heap (nil on failure, never panics)
//	p := pal.Alloc(256)
//	if p == nil { ... }
//	defer pal.Free(p)
//
//	// Dynamic libraries with purego bindings
//	lib, err := pal.LoadLibrary("mods/libamod.so")
//	if err != nil { ... }
//	defer lib.Close()
//	var amodInit func() int32
//	err = lib.Bind(&amodInit, "amod_init")
//
//	// Per-user writable directory, created on demand
//	dir := pal.PrefPath("ExampleOrg", "ExampleApp")
//
//	// Best-effort physical memory; zero fields mean "unknown"
//	ms := pal.QueryMemoryStatus()
//
//	// Process-wide networking bootstrap
//	if err := pal.NetInit(); err != nil { ... }
//	defer pal.NetCleanup()
//
// Implementations are selected at build time with build constraints, so callers
// never branch on the platform. Nothing in this package spawns goroutines or
// retries a failed OS call; degradations are reported through return values and
// the logger installed with [SetLogger].
//
// On systems without a native message box, [ShowMessageBox] uses the presenter
// registered with [RegisterMessageBox]. Importing
// github.com/YindSoft/pal/dialog registers an ebiten based dialog.
package pal
