package level

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    [][]int
		wantErr error
	}{
		{"single_row", "1 2 3\n", [][]int{{1, 2, 3}}, nil},
		{"blank_lines_skipped", "\n1 0\n\n2 5\n\n", [][]int{{1, 0}, {2, 5}}, nil},
		{"tabs_and_spaces", "1\t2  3\n4 5\t6", [][]int{{1, 2, 3}, {4, 5, 6}}, nil},
		{"empty", "", nil, ErrEmptyGrid},
		{"only_whitespace", "   \n\t\n", nil, ErrEmptyGrid},
		{"ragged", "1 2 3\n1 2\n", nil, ErrRaggedGrid},
		{"not_a_number", "1 x 3\n", nil, ErrInvalidTile},
		{"negative", "1 -2 3\n", nil, ErrInvalidTile},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(c.in))
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNewLaysOutBricksRowMajor(t *testing.T) {
	tiles := [][]int{
		{1, 0, 2},
		{3, 4, 5},
	}
	l, err := New("test", tiles, 300, 100)
	require.NoError(t, err)
	require.Len(t, l.Bricks, 5)

	want := []cp.Vector{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 0, Y: 50}, {X: 100, Y: 50}, {X: 200, Y: 50}}
	for i, b := range l.Bricks {
		assert.Equal(t, want[i], b.Position, "brick %d", i)
		assert.Equal(t, cp.Vector{X: 100, Y: 50}, b.Size)
	}
	assert.True(t, l.Bricks[0].Solid)
	assert.False(t, l.Bricks[1].Solid)
	assert.NotEqual(t, l.Bricks[2].Color, l.Bricks[3].Color)
}

func TestNewRejectsDegenerateGrids(t *testing.T) {
	_, err := New("empty", nil, 100, 100)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New("empty_row", [][]int{{}}, 100, 100)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = New("ragged", [][]int{{1, 2}, {1}}, 100, 100)
	assert.ErrorIs(t, err, ErrRaggedGrid)
}

func TestLoadEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"one.lvl", "two.lvl", "three.lvl", "four.lvl"} {
		t.Run(name, func(t *testing.T) {
			l, err := Load(name, 800, 300)
			require.NoError(t, err)
			assert.NotEmpty(t, l.Bricks)
			destructible := 0
			for _, b := range l.Bricks {
				if !b.Solid {
					destructible++
				}
			}
			assert.Positive(t, destructible, "every level can be won")
		})
	}

	_, err := Load("missing.lvl", 800, 300)
	assert.Error(t, err)
}
