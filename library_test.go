// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// systemLibrary returns a library present on every supported system and one
// of its exports.
func systemLibrary(t *testing.T) (path, symbol string) {
	t.Helper()
	switch runtime.GOOS {
	case "windows":
		return "kernel32.dll", "GetCurrentProcessId"
	case "darwin":
		return "/usr/lib/libSystem.B.dylib", "getpid"
	case "linux":
		return "libc.so.6", "getpid"
	case "freebsd":
		return "libc.so.7", "getpid"
	}
	t.Skipf("no dynamic loader on %s", runtime.GOOS)
	return "", ""
}

func openSystemLibrary(t *testing.T) (*Library, string) {
	t.Helper()
	path, symbol := systemLibrary(t)
	lib, err := LoadLibrary(path)
	if err != nil {
		t.Skipf("system library unavailable: %v", err)
	}
	return lib, symbol
}

func TestLoadLibraryEmptyPath(t *testing.T) {
	lib, err := LoadLibrary("")
	require.Nil(t, lib)
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoadLibraryMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "definitely", "not", "a", "real", LibraryName("library"))
	for _, path := range []string{missing, "/definitely/not/a/real/library.so"} {
		lib, err := LoadLibrary(path)
		require.Nil(t, lib)
		require.Error(t, err)
		require.Contains(t, err.Error(), path)
	}
}

func TestLibrarySymbolAndBind(t *testing.T) {
	lib, symbol := openSystemLibrary(t)
	defer lib.Close()

	sym, err := lib.Symbol(symbol)
	require.NoError(t, err)
	require.NotZero(t, sym)

	var getpid func() int32
	require.NoError(t, lib.Bind(&getpid, symbol))
	require.Equal(t, ProcessID(), uint32(getpid()))
}

func TestLibraryBindAllStopsAtFirstFailure(t *testing.T) {
	lib, symbol := openSystemLibrary(t)
	defer lib.Close()

	var first, second func() int32
	err := lib.BindAll([]Binding{
		{&first, symbol},
		{&second, "pal_no_such_symbol"},
	})
	require.True(t, errors.Is(err, ErrSymbolNotFound), "got %v", err)
	require.NotNil(t, first)
	require.Nil(t, second)
}

func TestLibraryMissingSymbol(t *testing.T) {
	lib, _ := openSystemLibrary(t)
	defer lib.Close()

	sym, err := lib.Symbol("pal_no_such_symbol")
	require.Zero(t, sym)
	require.True(t, errors.Is(err, ErrSymbolNotFound), "got %v", err)
	require.Contains(t, err.Error(), "pal_no_such_symbol")
}

func TestLibraryCloseTwice(t *testing.T) {
	lib, symbol := openSystemLibrary(t)
	require.NotZero(t, lib.Handle())
	require.NoError(t, lib.Close())
	require.Zero(t, lib.Handle())

	require.ErrorIs(t, lib.Close(), ErrLibraryClosed)
	_, err := lib.Symbol(symbol)
	require.ErrorIs(t, err, ErrLibraryClosed)
}

func TestLibraryIndependentHandles(t *testing.T) {
	path, symbol := systemLibrary(t)
	a, err := LoadLibrary(path)
	if err != nil {
		t.Skipf("system library unavailable: %v", err)
	}
	b, err := LoadLibrary(path)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	_, err = b.Symbol(symbol)
	require.NoError(t, err, "closing one handle must not release the other")
	require.NoError(t, b.Close())
	require.Equal(t, path, b.Path())
}

func TestNilLibrary(t *testing.T) {
	var lib *Library
	require.Empty(t, lib.Path())
	require.Zero(t, lib.Handle())
	_, err := lib.Symbol("getpid")
	require.ErrorIs(t, err, ErrLibraryClosed)
	require.ErrorIs(t, lib.Close(), ErrLibraryClosed)
}
