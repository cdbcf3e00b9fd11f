package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/breakout/common"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/render/fx"
	"golang.org/x/image/colornames"
)

var (
	background   = colornames.Black
	brickOutline = colornames.Dimgray
	overlayShade = color.NRGBA{A: 160}
)

var powerUpLabels = map[component.PowerUpType]string{
	component.PowerUpSpeed:              "SPEED",
	component.PowerUpSticky:             "STICKY",
	component.PowerUpPassThrough:        "PASS",
	component.PowerUpPaddleSizeIncrease: "+SIZE",
	component.PowerUpConfuse:            "CONFUSE",
	component.PowerUpChaos:              "CHAOS",
}

// Renderer draws a world snapshot. The scene is drawn offscreen first so the
// screen effects can move, flip and recolor it as a whole.
type Renderer struct {
	scene *ebiten.Image
	Debug bool
}

func NewRenderer(debug bool) *Renderer {
	return &Renderer{Debug: debug}
}

// Draw renders view onto screen. It never touches the world.
func (r *Renderer) Draw(screen *ebiten.Image, view *ecs.Snapshot) {
	if r == nil || screen == nil || view == nil {
		return
	}

	r.ensureScene(int(view.Width), int(view.Height))
	r.scene.Fill(background)
	drawScene(r.scene, view)

	screen.Fill(background)
	r.composite(screen, view)
	drawOverlay(screen, view)

	if r.Debug {
		drawDebug(screen, view)
	}
}

func (r *Renderer) ensureScene(w, h int) {
	if r.scene != nil {
		b := r.scene.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		r.scene.Deallocate()
	}
	r.scene = ebiten.NewImage(w, h)
}

func (r *Renderer) composite(screen *ebiten.Image, view *ecs.Snapshot) {
	effects := view.Effects
	t := view.Elapsed
	w, h := view.Width, view.Height

	var cm colorm.ColorM
	if effects.Confuse {
		invert(&cm)
	}

	var dx, dy float64
	if effects.Shake {
		dx, dy = fx.Shake(t, w, h)
	}

	if effects.Chaos {
		// drift with wrap-around, then a faded inverted copy for the edge glow
		ox, oy := fx.Chaos(t, w, h)
		for _, tile := range [4][2]float64{{-ox, -oy}, {w - ox, -oy}, {-ox, h - oy}, {w - ox, h - oy}} {
			op := &colorm.DrawImageOptions{}
			op.GeoM.Translate(tile[0]+dx, tile[1]+dy)
			colorm.DrawImage(screen, r.scene, cm, op)
		}
		var glow colorm.ColorM
		invert(&glow)
		glow.Scale(1, 1, 1, 0.25)
		op := &colorm.DrawImageOptions{}
		op.GeoM.Translate(dx, dy)
		colorm.DrawImage(screen, r.scene, glow, op)
		return
	}

	op := &colorm.DrawImageOptions{}
	if effects.Confuse {
		op.GeoM.Scale(-1, -1)
		op.GeoM.Translate(w, h)
	}
	op.GeoM.Translate(dx, dy)
	colorm.DrawImage(screen, r.scene, cm, op)
}

func invert(cm *colorm.ColorM) {
	cm.Scale(-1, -1, -1, 1)
	cm.Translate(1, 1, 1, 0)
}

func drawScene(dst *ebiten.Image, view *ecs.Snapshot) {
	for i := range view.Bricks {
		b := &view.Bricks[i]
		if b.Destroyed {
			continue
		}
		fillBox(dst, b, b.Color.RGBA(1))
		vector.StrokeRect(dst, float32(b.Position.X), float32(b.Position.Y), float32(b.Size.X), float32(b.Size.Y), 1, brickOutline, false)
	}

	for i := range view.Particles {
		p := &view.Particles[i]
		if !p.Alive() {
			continue
		}
		vector.FillRect(dst, float32(p.Position.X), float32(p.Position.Y), 3, 3, p.Color.RGBA(common.Clamp(p.Alpha, 0, 1)), false)
	}

	fillBox(dst, &view.Paddle, view.Paddle.Color.RGBA(1))

	ball := view.Ball.Circle()
	vector.DrawFilledCircle(dst, float32(ball.Center.X), float32(ball.Center.Y), float32(ball.Radius), view.Ball.Color.RGBA(1), true)

	for i := range view.PowerUps {
		p := &view.PowerUps[i]
		if p.Destroyed {
			continue
		}
		fillBox(dst, p, p.Color.RGBA(1))
		ebitenutil.DebugPrintAt(dst, powerUpLabels[p.PowerUp.Type], int(p.Position.X)+4, int(p.Position.Y)+2)
	}
}

func fillBox(dst *ebiten.Image, e *entity.Entity, clr color.Color) {
	vector.FillRect(dst, float32(e.Position.X), float32(e.Position.Y), float32(e.Size.X), float32(e.Size.Y), clr, false)
}

func drawOverlay(screen *ebiten.Image, view *ecs.Snapshot) {
	lines := fx.OverlayLines(view)
	if len(lines) == 0 {
		return
	}

	top := view.Height/2 - float64(len(lines))*10
	shade := overlayShade
	if view.State == component.GameWin {
		shade.A = uint8(255 * fx.Pulse(view.Elapsed, 2, 0.3, 0.6))
	}
	vector.FillRect(screen, 0, float32(top-10), float32(view.Width), float32(len(lines)*20+20), shade, false)

	for i, line := range lines {
		x := int(view.Width/2) - len(line)*3
		ebitenutil.DebugPrintAt(screen, line, x, int(top)+i*20)
	}
}

func drawDebug(screen *ebiten.Image, view *ecs.Snapshot) {
	var active []string
	for i := range view.PowerUps {
		p := &view.PowerUps[i]
		if p.PowerUp.Activated {
			active = append(active, fmt.Sprintf("%s %.1fs", p.PowerUp.Type, p.PowerUp.Duration))
		}
	}
	msg := fmt.Sprintf("FPS: %.1f  state: %s  level: %s  bricks: %d\npower-ups: %s",
		ebiten.ActualFPS(), view.State, view.LevelName, view.Remaining, strings.Join(active, ", "))
	ebitenutil.DebugPrintAt(screen, msg, 4, int(view.Height)-36)
}
