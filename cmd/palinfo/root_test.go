// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/YindSoft/pal"
	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { pal.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, args ...string) map[string]interface{} {
	t.Helper()
	out, err := run(t, append(args, "-o", "json")...)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	return got
}

func TestOSCommand(t *testing.T) {
	got := runJSON(t, "os")

	assert.Equal(t, pal.Current().String(), got["os"])
	assert.Equal(t, pal.LibraryExt, got["library_ext"])
	assert.Equal(t, pal.HeapBackend(), got["heap"])
	assert.EqualValues(t, os.Getpid(), got["pid"])
}

func TestOSCommandText(t *testing.T) {
	out, err := run(t, "os")
	require.NoError(t, err)

	assert.Contains(t, out, "os:")
	assert.Contains(t, out, pal.Current().String())
	assert.Regexp(t, `(?m)^module:\s+0x[0-9a-f]+$`, out)
}

func TestMemoryCommand(t *testing.T) {
	got := runJSON(t, "memory")

	total, ok := got["total_phys"].(float64)
	require.True(t, ok)
	avail, ok := got["avail_phys"].(float64)
	require.True(t, ok)
	assert.LessOrEqual(t, avail, total)
	assert.NotEmpty(t, got["summary"])
}

func TestPrefPathCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("preference root comes from the known folder API on windows")
	}
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", root)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	got := runJSON(t, "prefpath", "--org", "Acme", "--app", "Rocket", "--strict")

	want := filepath.Join(root, "Acme", "Rocket")
	assert.Equal(t, want, got["path"])
	assert.DirExists(t, want)
}

func TestPrefPathFromEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("preference root comes from the known folder API on windows")
	}
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", root)
	t.Setenv("PALINFO_APP", "FromEnv")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	got := runJSON(t, "prefpath", "--org", "")

	assert.Equal(t, filepath.Join(root, "FromEnv"), got["path"])
}

func TestPrefPathStrictRejectsEmptyApp(t *testing.T) {
	_, err := run(t, "prefpath", "--app", "", "--strict")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("preference root comes from the known folder API on windows")
	}
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", root)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	cfg := filepath.Join(t.TempDir(), "palinfo.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("org: CfgOrg\napp: CfgApp\noutput: json\n"), 0o600))

	out, err := run(t, "prefpath", "--config", cfg)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, filepath.Join(root, "CfgOrg", "CfgApp"), got["path"])
}

func TestHeapCommand(t *testing.T) {
	before := pal.HeapStats()
	got := runJSON(t, "heap", "1024")

	assert.Equal(t, true, got["zeroed"])
	assert.Equal(t, true, got["valid"])
	assert.EqualValues(t, 1024, got["requested"])
	assert.GreaterOrEqual(t, got["allocations"].(float64), float64(before.Allocations+2))
	assert.GreaterOrEqual(t, got["frees"].(float64), float64(before.Frees+1))
}

func TestHeapCommandRejectsBadSize(t *testing.T) {
	_, err := run(t, "heap", "zero")
	require.Error(t, err)
	_, err = run(t, "heap", "0")
	require.Error(t, err)
	_, err = run(t, "heap", "18446744073709551615")
	require.Error(t, err)
	_, err = run(t, "heap", strconv.FormatUint(maxHeapProbe+1, 10))
	require.ErrorContains(t, err, "invalid size")
}

func TestLoadCommandMissingLibrary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), pal.LibraryName("nosuchlib"))
	_, err := run(t, "load", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchlib")
}

func TestNetCommand(t *testing.T) {
	got := runJSON(t, "net")

	assert.Equal(t, true, got["ready"])
	assert.False(t, pal.NetReady())
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, "os", "-o", "xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "xml"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", "json")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = newLogger(&buf, "loud", "text")
	require.Error(t, err)
	_, err = newLogger(&buf, "info", "xml")
	require.Error(t, err)
}
