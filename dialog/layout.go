// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package dialog

import (
	"image"
	"strings"
	"unicode/utf8"
)

// Metrics of ebitenutil's debug font and the box around the text.
const (
	glyphWidth  = 6
	lineHeight  = 16
	padding     = 16
	accentWidth = 6
	maxColumns  = 64
	minColumns  = 24

	buttonWidth  = 72
	buttonHeight = 24
)

// layout is the geometry of one dialog, computed once before the window opens.
type layout struct {
	width, height int
	titleAt       image.Point
	lines         []string
	textAt        image.Point
	button        image.Rectangle
}

func computeLayout(title, message string) layout {
	lines := wrapText(message, maxColumns)
	cols := utf8.RuneCountInString(title)
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	if cols < minColumns {
		cols = minColumns
	}
	if cols > maxColumns {
		cols = maxColumns
	}

	left := accentWidth + padding
	l := layout{
		titleAt: image.Pt(left, padding),
		lines:   lines,
		textAt:  image.Pt(left, padding+lineHeight*2),
	}
	l.width = left + cols*glyphWidth + padding
	textBottom := l.textAt.Y + len(lines)*lineHeight
	bx := l.width - padding - buttonWidth
	by := textBottom + padding
	l.button = image.Rect(bx, by, bx+buttonWidth, by+buttonHeight)
	l.height = l.button.Max.Y + padding
	return l
}

// wrapText splits message into lines of at most cols runes, breaking at spaces
// where possible and keeping explicit newlines.
func wrapText(message string, cols int) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			for utf8.RuneCountInString(w) > cols {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				r := []rune(w)
				out = append(out, string(r[:cols]))
				w = string(r[cols:])
			}
			switch {
			case line == "":
				line = w
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) <= cols:
				line += " " + w
			default:
				out = append(out, line)
				line = w
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
