// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package dialog is a cross-platform modal message box drawn with ebiten.
//
// Importing the package registers it with pal, so pal.ShowMessageBox uses it on
// systems without a native message box:
//
//	import _ "github.com/YindSoft/pal/dialog"
//
// Show must be called from the main goroutine, and ebiten allows one window
// run per process: later calls return ErrUnavailable.
package dialog

import (
	"image/color"
	"sync/atomic"

	"github.com/YindSoft/pal"
	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrUnavailable is returned when the dialog window cannot be opened.
var ErrUnavailable = errors.New("dialog: window unavailable")

var (
	background  = color.RGBA{0x2b, 0x2b, 0x33, 0xff}
	errorAccent = color.RGBA{0xd0, 0x3a, 0x3a, 0xff}
	warnAccent  = color.RGBA{0xe0, 0xa8, 0x20, 0xff}
	buttonIdle  = color.RGBA{0x4a, 0x4a, 0x58, 0xff}
	buttonHover = color.RGBA{0x60, 0x60, 0x72, 0xff}
)

var ran atomic.Bool

func init() {
	pal.RegisterMessageBox(Show)
}

type box struct {
	layout
	title   string
	isError bool
	hover   bool
}

// Show opens a modal window with title and message and blocks until the user
// presses OK, Enter, Space or Escape, or closes the window.
func Show(title, message string, isError bool) (err error) {
	if !ran.CompareAndSwap(false, true) {
		return errors.Wrap(ErrUnavailable, "ebiten already ran in this process")
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrUnavailable, "%v", r)
		}
	}()

	b := &box{layout: computeLayout(title, message), title: title, isError: isError}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.width, b.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(b); err != nil {
		return errors.Mark(errors.Wrap(err, "run dialog"), ErrUnavailable)
	}
	return nil
}

func (b *box) Update() error {
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace, ebiten.KeyEscape} {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}
	mx, my := ebiten.CursorPosition()
	b.hover = b.button.Min.X <= mx && mx < b.button.Max.X && b.button.Min.Y <= my && my < b.button.Max.Y
	if b.hover && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return ebiten.Termination
	}
	return nil
}

func (b *box) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	accent := warnAccent
	if b.isError {
		accent = errorAccent
	}
	vector.DrawFilledRect(screen, 0, 0, accentWidth, float32(b.height), accent, false)

	ebitenutil.DebugPrintAt(screen, b.title, b.titleAt.X, b.titleAt.Y)
	for i, line := range b.lines {
		ebitenutil.DebugPrintAt(screen, line, b.textAt.X, b.textAt.Y+i*lineHeight)
	}

	fill := buttonIdle
	if b.hover {
		fill = buttonHover
	}
	r := b.button
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)
	label := "OK"
	lx := r.Min.X + (r.Dx()-len(label)*glyphWidth)/2
	ly := r.Min.Y + (r.Dy()-lineHeight)/2
	ebitenutil.DebugPrintAt(screen, label, lx, ly)
}

func (b *box) Layout(_, _ int) (int, int) {
	return b.width, b.height
}
