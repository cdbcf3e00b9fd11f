package level

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/levels"
)

var (
	ErrEmptyGrid   = errors.New("level: empty grid")
	ErrRaggedGrid  = errors.New("level: ragged grid")
	ErrInvalidTile = errors.New("level: invalid tile code")
)

// Level is a grid of bricks laid out over a fixed pixel region. Bricks is
// the layout the world spawns brick entities from; it is never mutated by
// play.
type Level struct {
	Name   string
	Tiles  [][]int
	Width  float64
	Height float64
	Bricks []entity.Entity
}

// Parse reads whitespace separated tile codes, one grid row per line.
// Blank lines are skipped. Every row must have the same length.
func Parse(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil || code < 0 {
				return nil, fmt.Errorf("%w: %q on line %d", ErrInvalidTile, f, lineNo)
			}
			row = append(row, code)
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d tiles, want %d", ErrRaggedGrid, lineNo, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("level: scan: %w", err)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	return grid, nil
}

// New lays the tile grid out over a width x height region.
func New(name string, tiles [][]int, width, height float64) (*Level, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range tiles {
		if len(row) != len(tiles[0]) {
			return nil, fmt.Errorf("%w: row %d", ErrRaggedGrid, y)
		}
	}
	l := &Level{Name: name, Tiles: tiles, Width: width, Height: height}
	l.layout()
	return l, nil
}

// Load reads the named level file and lays it out over width x height.
func Load(name string, width, height float64) (*Level, error) {
	data, err := levels.Load(name)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", name, err)
	}
	tiles, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", name, err)
	}
	return New(name, tiles, width, height)
}

// layout builds one brick per non-empty tile in row-major order.
func (l *Level) layout() {
	rows := len(l.Tiles)
	cols := len(l.Tiles[0])
	unit := cp.Vector{X: l.Width / float64(cols), Y: l.Height / float64(rows)}

	l.Bricks = l.Bricks[:0]
	for y, row := range l.Tiles {
		for x, code := range row {
			if code == entity.TileEmpty {
				continue
			}
			pos := cp.Vector{X: unit.X * float64(x), Y: unit.Y * float64(y)}
			l.Bricks = append(l.Bricks, entity.NewBrick(code, pos, unit))
		}
	}
}
