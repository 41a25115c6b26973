// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterJSONLargeUint(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf, json: true}
	require.NoError(t, p.print(
		field{"small", uint64(42)},
		field{"huge", uint64(math.MaxUint64)},
	))

	assert.Contains(t, buf.String(), `"small":42`)
	assert.NotContains(t, buf.String(), `"huge":-`)
}

func TestPrinterText(t *testing.T) {
	var buf bytes.Buffer
	p := &printer{w: &buf}
	require.NoError(t, p.print(field{"handle", uintptr(0x10)}, field{"ready", true}))

	assert.Equal(t, "handle:        0x10\nready:         true\n", buf.String())
}
