// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/YindSoft/pal"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/exp/slog"
)

const (
	screenWidth  = 640
	screenHeight = 240
	barX         = 16
	barY         = 150
	barWidth     = screenWidth - 2*barX
	barHeight    = 20
)

type Game struct {
	prefDir string
	mem     pal.MemoryStatus
	polled  time.Time
	counter int
}

func newGame() *Game {
	return &Game{
		prefDir: pal.PrefPath("ExampleOrg", "PalDemo"),
		mem:     pal.QueryMemoryStatus(),
		polled:  time.Now(),
	}
}

func (g *Game) Update() error {
	g.counter++

	if time.Since(g.polled) >= time.Second {
		g.mem = pal.QueryMemoryStatus()
		g.polled = time.Now()
	}

	// ebiten cannot run a second window from inside RunGame, so the box is
	// shown from its own goroutine: native on Windows, stderr elsewhere.
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		go pal.ShowMessageBox("pal demo", fmt.Sprintf("Running on %s, pid %d.", pal.Current(), pal.ProcessID()), false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	lines := []string{
		fmt.Sprintf("OS:     %s (%s heap)", pal.Current(), pal.HeapBackend()),
		fmt.Sprintf("PID:    %d", pal.ProcessID()),
		fmt.Sprintf("Prefs:  %s", g.prefDir),
		fmt.Sprintf("Memory: %s", g.mem),
		"",
		"M: message box   Esc: quit",
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, barX, 16+i*16)
	}

	vector.DrawFilledRect(screen, barX, barY, barWidth, barHeight, color.RGBA{60, 60, 72, 255}, false)
	if g.mem.Known() {
		used := float32(g.mem.TotalPhys-g.mem.AvailPhys) / float32(g.mem.TotalPhys)
		fill := color.RGBA{0, 200, 80, 255}
		if used > 0.9 {
			fill = color.RGBA{220, 60, 60, 255}
		}
		vector.DrawFilledRect(screen, barX, barY, barWidth*used, barHeight, fill, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), barX, screenHeight-24)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	logger := slog.New(slog.HandlerOptions{Level: slog.LevelDebug}.NewTextHandler(os.Stderr))
	pal.SetLogger(logger)
	pal.SetDPIAware()

	if err := pal.NetInit(); err != nil {
		logger.Error("network init", slog.Any("error", err))
	}
	defer pal.NetCleanup()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("pal - platform layer demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(newGame()); err != nil {
		logger.Error("run", slog.Any("error", err))
		os.Exit(1)
	}
}
