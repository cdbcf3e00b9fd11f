package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/breakout/common"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/render/fx"
)

var powerUpGlyphs = map[component.PowerUpType]rune{
	component.PowerUpSpeed:              'S',
	component.PowerUpSticky:             'T',
	component.PowerUpPassThrough:        'P',
	component.PowerUpPaddleSizeIncrease: '+',
	component.PowerUpConfuse:            'C',
	component.PowerUpChaos:              'X',
}

// grid maps playfield pixels onto terminal cells, applying the screen
// effects of the view.
type grid struct {
	cols, rows int
	sx, sy     float64
	dx, dy     float64
	flip       bool
	invert     bool
}

func newGrid(cols, rows int, view *ecs.Snapshot) grid {
	g := grid{cols: cols, rows: rows}
	if view.Width <= 0 || view.Height <= 0 {
		return g
	}
	g.sx = float64(cols) / view.Width
	g.sy = float64(rows) / view.Height

	effects := view.Effects
	if effects.Shake {
		dx, dy := fx.Shake(view.Elapsed, view.Width, view.Height)
		g.dx, g.dy = dx, dy
	}
	if effects.Chaos {
		ox, oy := fx.Chaos(view.Elapsed, view.Width, view.Height)
		g.dx += ox
		g.dy += oy
	}
	g.flip = effects.Confuse
	g.invert = effects.Confuse || effects.Chaos
	return g
}

// cell converts a playfield point to a cell, wrapping around the edges.
func (g grid) cell(x, y float64) (int, int) {
	cx := int(math.Floor((x + g.dx) * g.sx))
	cy := int(math.Floor((y + g.dy) * g.sy))
	cx = ((cx % g.cols) + g.cols) % g.cols
	cy = ((cy % g.rows) + g.rows) % g.rows
	if g.flip {
		cx = g.cols - 1 - cx
		cy = g.rows - 1 - cy
	}
	return cx, cy
}

func (g grid) color(c component.Color, alpha float64) tcell.Color {
	a := common.Clamp(alpha, 0, 1)
	r, gr, b := common.Clamp(c.R, 0, 1)*a, common.Clamp(c.G, 0, 1)*a, common.Clamp(c.B, 0, 1)*a
	if g.invert {
		r, gr, b = 1-r, 1-gr, 1-b
	}
	return tcell.NewRGBColor(int32(r*255), int32(gr*255), int32(b*255))
}

func (g grid) fillBox(s tcell.Screen, e *entity.Entity, ch rune, style tcell.Style) {
	if g.cols == 0 || g.rows == 0 {
		return
	}
	x0, y0 := e.Position.X, e.Position.Y
	w := math.Max(1/g.sx, e.Size.X)
	h := math.Max(1/g.sy, e.Size.Y)
	stepX, stepY := 1/g.sx, 1/g.sy
	for y := y0; y < y0+h; y += stepY {
		for x := x0; x < x0+w; x += stepX {
			cx, cy := g.cell(x, y)
			s.SetContent(cx, cy, ch, nil, style)
		}
	}
}

// drawView paints the snapshot onto the whole terminal.
func drawView(s tcell.Screen, view *ecs.Snapshot) {
	s.Clear()
	cols, rows := s.Size()
	if cols == 0 || rows == 0 {
		return
	}
	g := newGrid(cols, rows, view)
	if g.sx == 0 || g.sy == 0 {
		return
	}
	base := tcell.StyleDefault.Background(g.color(component.Color{}, 1))

	for i := range view.Bricks {
		b := &view.Bricks[i]
		if b.Destroyed {
			continue
		}
		ch := '▓'
		if b.Solid {
			ch = '█'
		}
		g.fillBox(s, b, ch, base.Foreground(g.color(b.Color, 1)))
	}

	for i := range view.Particles {
		p := &view.Particles[i]
		if !p.Alive() {
			continue
		}
		cx, cy := g.cell(p.Position.X, p.Position.Y)
		s.SetContent(cx, cy, '·', nil, base.Foreground(g.color(p.Color, p.Alpha)))
	}

	g.fillBox(s, &view.Paddle, '▀', base.Foreground(g.color(view.Paddle.Color, 1)))

	for i := range view.PowerUps {
		p := &view.PowerUps[i]
		if p.Destroyed {
			continue
		}
		g.fillBox(s, p, powerUpGlyphs[p.PowerUp.Type], base.Foreground(g.color(p.Color, 1)))
	}

	c := view.Ball.Circle()
	cx, cy := g.cell(c.Center.X, c.Center.Y)
	s.SetContent(cx, cy, '●', nil, base.Foreground(g.color(view.Ball.Color, 1)))

	lines := fx.OverlayLines(view)
	top := rows/2 - len(lines)
	for i, line := range lines {
		drawText(s, cols/2-len(line)/2, top+i*2, line, tcell.StyleDefault.Bold(true))
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
