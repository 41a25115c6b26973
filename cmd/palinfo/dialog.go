// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build dialog

package main

// Built with -tags dialog, msgbox opens the ebiten window on systems without a
// native message box. Without the tag palinfo stays headless.
import _ "github.com/YindSoft/pal/dialog"
