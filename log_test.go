// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewJSONHandler(&buf)))
	t.Cleanup(func() { SetLogger(nil) })

	require.Equal(t, ".", PrefPath("ExampleOrg", ""))
	require.Contains(t, buf.String(), "falling back to working directory")
	require.Contains(t, buf.String(), `"app":""`)
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	require.NotPanics(t, func() { Logger().Info("discarded") })
}
