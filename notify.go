// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// MessageBoxFunc presents a modal message and blocks until it is dismissed.
type MessageBoxFunc func(title, message string, isError bool) error

var (
	presenterMu sync.Mutex
	presenter   MessageBoxFunc

	// messageFallback receives messages no dialog could show.
	messageFallback io.Writer = os.Stderr
)

// RegisterMessageBox installs the dialog used where the OS has no native
// message box. Passing nil removes it.
func RegisterMessageBox(fn MessageBoxFunc) {
	presenterMu.Lock()
	presenter = fn
	presenterMu.Unlock()
}

func registeredMessageBox() MessageBoxFunc {
	presenterMu.Lock()
	defer presenterMu.Unlock()
	return presenter
}

// ShowMessageBox displays a modal dialog and blocks the calling goroutine until
// it is dismissed. isError selects the error style over the warning style.
//
// The native dialog is used on Windows; elsewhere the one installed with
// RegisterMessageBox. If nothing can be displayed, for instance in a headless
// session, the message goes to standard error and the failure is swallowed.
func ShowMessageBox(title, message string, isError bool) {
	err := showNativeMessageBox(title, message, isError)
	if err == nil {
		return
	}
	if !errors.Is(err, ErrUnsupported) {
		Logger().Debug("native message box failed", slog.Any("error", err))
	}

	if fn := registeredMessageBox(); fn != nil {
		err := fn(title, message, isError)
		if err == nil {
			return
		}
		Logger().Debug("message box presenter failed", slog.Any("error", err))
	}

	kind := "warning"
	if isError {
		kind = "error"
	}
	fmt.Fprintf(messageFallback, "%s: %s: %s\n", kind, title, message)
}
