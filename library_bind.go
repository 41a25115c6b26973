// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build darwin || linux || freebsd || windows

package pal

import (
	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
)

func bindFunc(fptr interface{}, sym uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("bind: %v", r)
		}
	}()
	purego.RegisterFunc(fptr, sym)
	return nil
}

func registerSymbol(fptr interface{}, handle uintptr, name string) error {
	sym, err := symbolAddr(handle, name)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrSymbolNotFound), "symbol %q", name)
	}
	if sym == 0 {
		return errors.Wrapf(ErrSymbolNotFound, "symbol %q", name)
	}
	return bindFunc(fptr, sym)
}
