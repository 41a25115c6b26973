// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

// withDataHome points the XDG data home at dir for the duration of the test.
func withDataHome(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("preference root comes from the known folder API on windows")
	}
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestProcessID(t *testing.T) {
	require.Equal(t, uint32(os.Getpid()), ProcessID())
	require.NotZero(t, ProcessID())
}

func TestModuleHandle(t *testing.T) {
	if runtime.GOOS == "windows" {
		require.NotZero(t, ModuleHandle())
	} else {
		require.Zero(t, ModuleHandle())
	}
}

func TestPrefPathIdempotent(t *testing.T) {
	root := t.TempDir()
	withDataHome(t, root)

	first := PrefPath("ExampleOrg", "ExampleApp")
	second := PrefPath("ExampleOrg", "ExampleApp")

	require.Equal(t, filepath.Join(root, "ExampleOrg", "ExampleApp"), first)
	require.Equal(t, first, second)
	require.False(t, strings.HasSuffix(first, string(filepath.Separator)))
	require.DirExists(t, first)
}

func TestPrefPathTrailingSeparatorInRoot(t *testing.T) {
	root := t.TempDir()
	withDataHome(t, root+string(filepath.Separator))

	dir := PrefPath("ExampleOrg", "ExampleApp")
	require.Equal(t, filepath.Join(root, "ExampleOrg", "ExampleApp"), dir)
	require.False(t, strings.HasSuffix(dir, "/"))
}

func TestPrefPathWithoutOrg(t *testing.T) {
	root := t.TempDir()
	withDataHome(t, root)

	dir, err := ResolvePrefPath("", "ExampleApp")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "ExampleApp"), dir)
	require.DirExists(t, dir)
}

func TestPrefPathEmptyApp(t *testing.T) {
	_, err := ResolvePrefPath("ExampleOrg", "")
	require.ErrorIs(t, err, ErrEmptyAppName)
	require.Equal(t, ".", PrefPath("ExampleOrg", ""))
}

func TestPrefPathFallsBackWhenUncreatable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	withDataHome(t, blocker)

	_, err := ResolvePrefPath("ExampleOrg", "ExampleApp")
	require.Error(t, err)
	require.Equal(t, ".", PrefPath("ExampleOrg", "ExampleApp"))
}

func TestMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	require.NoError(t, Mkdir(dir))
	require.DirExists(t, dir)

	err := Mkdir(dir)
	require.ErrorIs(t, err, fs.ErrExist)

	require.Error(t, Mkdir(filepath.Join(dir, "a", "b")), "only one level is created")
}

func TestTrimSeparators(t *testing.T) {
	for in, want := range map[string]string{
		"/home/user/.local/share/": "/home/user/.local/share",
		"/home/user//":             "/home/user",
		`C:\Users\me\AppData\`:     `C:\Users\me\AppData`,
		"/":                        "/",
		`C:\`:                      `C:\`,
		"relative":                 "relative",
	} {
		require.Equal(t, want, trimSeparators(in), in)
	}
}
