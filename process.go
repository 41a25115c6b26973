// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// ProcessID returns the OS identifier of the current process.
func ProcessID() uint32 {
	return uint32(os.Getpid())
}

// ModuleHandle identifies the executable's loaded module. It is 0 where the
// platform has no equivalent.
func ModuleHandle() uintptr {
	return moduleHandle()
}

// Mkdir creates a single directory level with default permissions. An existing
// directory is reported as an error matching fs.ErrExist, which callers usually
// treat as benign.
func Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

// PrefPath returns the per-user writable directory for app, published by org,
// creating it when needed. The result never ends with a path separator.
// When no preference root exists or the directory cannot be created it returns
// "." and logs the reason.
func PrefPath(org, app string) string {
	dir, err := ResolvePrefPath(org, app)
	if err != nil {
		Logger().Warn("falling back to working directory for preferences",
			slog.String("org", org), slog.String("app", app), slog.Any("error", err))
		return "."
	}
	return dir
}

// ResolvePrefPath is PrefPath without the fallback: failures are returned.
// An empty org is skipped; an empty app is an error.
func ResolvePrefPath(org, app string) (string, error) {
	if app == "" {
		return "", ErrEmptyAppName
	}
	root, err := prefRoot()
	if err != nil {
		return "", err
	}
	if root == "" {
		return "", ErrNoPrefRoot
	}

	dir := root
	if org != "" {
		dir = filepath.Join(dir, org)
	}
	dir = trimSeparators(filepath.Join(dir, app))

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", errors.Wrapf(err, "create preference directory %s", dir)
	}
	return dir, nil
}

// trimSeparators strips trailing separators but keeps a bare root intact.
func trimSeparators(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" || strings.HasSuffix(trimmed, ":") {
		return p
	}
	return trimmed
}
