package barber

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
	"github.com/vovakirdan/new-barber/internal/engine"
)

const (
	hudHeight    = 2
	footerHeight = 1
	minWidth     = 30
	minHeight    = 12
)

// field maps world coordinates onto the play area of the screen.
type field struct {
	x, y, w, h int
}

func playField(dst *core.Screen) field {
	return field{x: 0, y: hudHeight, w: dst.Width(), h: dst.Height() - hudHeight - footerHeight}
}

func (f field) row(v float64, r config.Range) int {
	return f.y + core.Scale(v, r.Min, r.Max, f.h)
}

func (f field) col(v float64, r config.Range) int {
	return f.x + core.Scale(v, r.Min, r.Max, f.w)
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		renderOverlay(dst, "Configuration error", g.err.Error())
		return
	}
	if dst.Width() < minWidth || dst.Height() < minHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	cfg := g.config()
	s := g.snap
	g.renderHUD(dst, s)
	if g.mode == engine.ModeRush {
		renderRush(dst, cfg, s)
	} else {
		renderAlign(dst, cfg, s)
	}
	renderFooter(dst)

	switch {
	case s.Phase == engine.PhaseReady:
		renderOverlay(dst, g.Title(), "Press SPACE to start")
	case s.Phase == engine.PhaseGameOver:
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score %d  Best %d  R to play again", s.Score, s.HighScore))
	case s.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, s engine.Snapshot) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d", g.Title(), s.Score, s.HighScore)
	if g.mode == engine.ModeAlign {
		hud += fmt.Sprintf("  Level: %d", s.Level)
	}
	dst.DrawText(0, 0, hud)

	hearts := strings.Repeat("♥", s.Lives) + strings.Repeat("♡", max(0, s.MaxLives-s.Lives))
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorRed)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func renderFooter(dst *core.Screen) {
	dst.DrawTextColored(1, dst.Height()-1, "SPACE cut  P pause  R restart  BKSP reset  ESC back", core.ColorGray)
}

func renderAlign(dst *core.Screen, cfg config.Config, s engine.Snapshot) {
	a := cfg.Align
	f := playField(dst)
	cx := f.w / 2

	// Mover track.
	for y := f.y; y < f.y+f.h; y++ {
		dst.SetColored(1, y, '┆', core.ColorGray)
	}

	// Hair covers the target band; the head sits on top.
	top, bottom := f.row(a.TargetBand.Min, a.Axis), f.row(a.TargetBand.Max, a.Axis)
	dst.FillRect(core.NewRect(cx-6, top, 13, bottom-top+1), '│', core.ColorBrown)
	if top-1 >= f.y {
		dst.DrawTextColored(cx-3, top-1, "( ^_^ )", core.ColorYellow)
	}

	if s.HasTarget {
		ty := f.row(s.Target.Position, a.Axis)
		for x := cx - 9; x < cx+10; x++ {
			dst.SetColored(x, ty, '┄', core.ColorGreen)
		}
	}

	my := f.row(s.Mover.Position, a.Axis)
	mx := 3
	if s.Stance == engine.StanceCutting {
		mx += int(s.CuttingProgress * float64(cx-mx))
		for x := 3; x < mx; x++ {
			dst.SetColored(x, my, '·', core.ColorGray)
		}
	}
	dst.SetColored(mx, my, '✂', core.ColorCyan)
}

func renderRush(dst *core.Screen, cfg config.Config, s engine.Snapshot) {
	r := cfg.Rush
	f := playField(dst)
	xs := config.Range{Min: 0, Max: r.SweepEndX}
	ys := config.Range{Min: 0, Max: r.BottomY}
	unitsPerRow := r.BottomY / float64(max(1, f.h))

	for _, o := range s.Objects {
		if o.Pos.Y < 0 {
			continue
		}
		x, y := f.col(o.Pos.X, xs), f.row(o.Pos.Y, ys)
		length := max(1, int(o.Size/unitsPerRow))
		for i := 0; i < length && y-i >= f.y; i++ {
			dst.SetColored(x, y-i, '│', o.Color)
		}
	}
	for _, p := range s.Particles {
		if p.Pos.Y < 0 {
			continue
		}
		dst.SetColored(f.col(p.Pos.X, xs), f.row(p.Pos.Y, ys), '·', p.Color)
	}

	cx, cy := f.col(s.Cutter.X, xs), f.row(s.Cutter.Y, ys)
	if s.Stance == engine.StanceSlicing {
		start := f.col(r.SweepStartX, xs)
		for x := start; x < cx; x++ {
			dst.SetColored(x, cy, '─', core.ColorGray)
		}
	}
	dst.SetColored(cx, cy, '✂', core.ColorCyan)
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, title, subtitle string) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	w = min(w, dst.Width())
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}
