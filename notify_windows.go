// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package pal

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbApplModal       = 0x00000000
	mbIconStop        = 0x00000010
	mbIconExclamation = 0x00000030
)

func showNativeMessageBox(title, message string, isError bool) error {
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return errors.Wrap(err, "message box title")
	}
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return errors.Wrap(err, "message box text")
	}
	style := uint32(mbApplModal | mbOK | mbIconExclamation)
	if isError {
		style = mbApplModal | mbOK | mbIconStop
	}
	if ret, err := windows.MessageBox(0, text, caption, style); ret == 0 {
		return errors.Wrap(err, "MessageBox")
	}
	return nil
}
