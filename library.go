// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package pal

import (
	"github.com/cockroachdb/errors"
)

// Library is a loaded shared module. Each successful LoadLibrary must be
// balanced by exactly one Close; the same module may be loaded several times
// and every handle is released independently.
//
// Addresses and bound functions obtained from a Library are invalid once it is
// closed. The Library does not track them.
type Library struct {
	handle uintptr
	path   string
}

// Binding pairs a pointer to a Go func variable with the exported symbol it
// should call.
type Binding struct {
	Fn   interface{}
	Name string
}

// LoadLibrary opens the shared module at path with lazy symbol binding.
// On failure it returns a nil Library and an error carrying the loader's
// message; it never panics.
func LoadLibrary(path string) (*Library, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	handle, err := openLibrary(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load library %s", path)
	}
	if handle == 0 {
		return nil, errors.Newf("load library %s: loader returned a null handle", path)
	}
	return &Library{handle: handle, path: path}, nil
}

// Path returns the path the library was loaded from.
func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Handle returns the OS handle, or 0 once the library is closed.
func (l *Library) Handle() uintptr {
	if l == nil {
		return 0
	}
	return l.handle
}

// Symbol returns the address of the exported symbol name.
func (l *Library) Symbol(name string) (uintptr, error) {
	if l == nil || l.handle == 0 {
		return 0, ErrLibraryClosed
	}
	sym, err := symbolAddr(l.handle, name)
	if err != nil {
		return 0, errors.Wrapf(errors.Mark(err, ErrSymbolNotFound), "symbol %q in %s", name, l.path)
	}
	if sym == 0 {
		return 0, errors.Wrapf(ErrSymbolNotFound, "symbol %q in %s", name, l.path)
	}
	return sym, nil
}

// Bind resolves name and registers it into fptr, which must be a pointer to a
// func variable whose signature matches the C function.
func (l *Library) Bind(fptr interface{}, name string) error {
	sym, err := l.Symbol(name)
	if err != nil {
		return err
	}
	return bindFunc(fptr, sym)
}

// BindAll binds every entry of table and stops at the first failure.
func (l *Library) BindAll(table []Binding) error {
	for _, b := range table {
		if err := l.Bind(b.Fn, b.Name); err != nil {
			return err
		}
	}
	return nil
}

// Close unloads the library. Closing an already closed Library returns
// ErrLibraryClosed without calling into the OS again.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return ErrLibraryClosed
	}
	h := l.handle
	l.handle = 0
	if err := closeLibrary(h); err != nil {
		return errors.Wrapf(err, "close library %s", l.path)
	}
	return nil
}
