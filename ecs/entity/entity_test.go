package entity

import (
	"fmt"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestBallMove(t *testing.T) {
	cases := []struct {
		name    string
		pos     cp.Vector
		vel     cp.Vector
		wantPos cp.Vector
		wantVel cp.Vector
	}{
		{"free_flight", cp.Vector{X: 100, Y: 100}, cp.Vector{X: 10, Y: -20}, cp.Vector{X: 101, Y: 98}, cp.Vector{X: 10, Y: -20}},
		{"left_wall", cp.Vector{X: 0.5, Y: 100}, cp.Vector{X: -10, Y: 5}, cp.Vector{X: 0, Y: 100.5}, cp.Vector{X: 10, Y: 5}},
		{"right_wall", cp.Vector{X: 779.5, Y: 100}, cp.Vector{X: 10, Y: 5}, cp.Vector{X: 780, Y: 100.5}, cp.Vector{X: -10, Y: 5}},
		{"top_wall", cp.Vector{X: 100, Y: 0.5}, cp.Vector{X: 0, Y: -10}, cp.Vector{X: 100, Y: 0}, cp.Vector{X: 0, Y: 10}},
		{"bottom_is_open", cp.Vector{X: 100, Y: 599.5}, cp.Vector{X: 0, Y: 10}, cp.Vector{X: 100, Y: 600.5}, cp.Vector{X: 0, Y: 10}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBall(c.pos, 10, c.vel)
			b.Ball.Stuck = false
			got := b.Move(0.1, 800)
			assert.InDelta(t, c.wantPos.X, got.X, 1e-9)
			assert.InDelta(t, c.wantPos.Y, got.Y, 1e-9)
			assert.Equal(t, c.wantVel, b.Velocity)
		})
	}
}

func TestStuckBallDoesNotMove(t *testing.T) {
	b := NewBall(cp.Vector{X: 10, Y: 10}, 10, cp.Vector{X: 100, Y: -100})
	assert.True(t, b.Ball.Stuck)
	assert.Equal(t, cp.Vector{X: 10, Y: 10}, b.Move(1, 800))
}

func TestBallShape(t *testing.T) {
	b := NewBall(cp.Vector{X: 10, Y: 20}, 12.5, cp.Vector{})
	assert.Equal(t, cp.Vector{X: 25, Y: 25}, b.Size)
	c := b.Circle()
	assert.Equal(t, cp.Vector{X: 22.5, Y: 32.5}, c.Center)
	assert.Equal(t, 12.5, c.Radius)
	assert.Equal(t, c.Center, b.Center())
}

func TestResetBall(t *testing.T) {
	b := NewBall(cp.Vector{}, 10, cp.Vector{})
	b.Ball.Stuck = false
	b.Ball.Sticky = true
	b.Ball.PassThrough = true
	b.Color = component.Color{R: 1, G: 0.5, B: 0.5}

	b.ResetBall(cp.Vector{X: 5, Y: 6}, cp.Vector{X: 1, Y: -1})

	assert.Equal(t, cp.Vector{X: 5, Y: 6}, b.Position)
	assert.Equal(t, cp.Vector{X: 1, Y: -1}, b.Velocity)
	assert.True(t, b.Ball.Stuck)
	assert.False(t, b.Ball.Sticky)
	assert.False(t, b.Ball.PassThrough)
	assert.Equal(t, component.White, b.Color)
}

func TestPaddle(t *testing.T) {
	p := NewPaddle(cp.Vector{X: 100, Y: 20}, 800, 600)
	assert.Equal(t, KindPaddle, p.Kind)
	assert.Equal(t, cp.Vector{X: 350, Y: 580}, p.Position)
	assert.Equal(t, cp.Vector{X: 387.5, Y: 555}, p.BallRestPosition(12.5))

	p.Size.X = 150
	p.Color = component.Color{R: 1, G: 0.5, B: 1}
	p.ResetPaddle(cp.Vector{X: 100, Y: 20}, 800, 600)
	assert.Equal(t, 100.0, p.Size.X)
	assert.Equal(t, component.White, p.Color)
}

func TestNewBrick(t *testing.T) {
	cases := []struct {
		code  int
		solid bool
		color component.Color
	}{
		{TileSolid, true, component.Color{R: 0.8, G: 0.8, B: 0.7}},
		{2, false, component.Color{R: 0.2, G: 0.6, B: 1.0}},
		{3, false, component.Color{R: 0.0, G: 0.7, B: 0.0}},
		{4, false, component.Color{R: 0.8, G: 0.8, B: 0.4}},
		{5, false, component.Color{R: 1.0, G: 0.5, B: 0.0}},
		{9, false, component.White},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("code_%d", c.code), func(t *testing.T) {
			b := NewBrick(c.code, cp.Vector{X: 1, Y: 2}, cp.Vector{X: 3, Y: 4})
			assert.Equal(t, KindBrick, b.Kind)
			assert.Equal(t, c.solid, b.Solid)
			assert.Equal(t, c.color, b.Color)
			assert.False(t, b.Destroyed)
		})
	}
}
