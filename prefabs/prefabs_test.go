package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/breakout/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadGameSpecDefaults(t *testing.T) {
	spec, err := LoadGameSpec()
	require.NoError(t, err)

	assert.Equal(t, ScreenSpec{Width: 800, Height: 600}, spec.Screen)
	assert.Equal(t, PaddleSpec{Width: 100, Height: 20, Speed: 500}, spec.Paddle)
	assert.Equal(t, 12.5, spec.Ball.Radius)
	assert.Equal(t, VectorSpec{X: 100, Y: -350}, spec.Ball.Velocity)
	assert.Equal(t, 2.0, spec.Ball.Strength)
	assert.Equal(t, 0.05, spec.ShakeSeconds)
	assert.Equal(t, 500, spec.Particles.Amount)
	assert.Equal(t, []string{"one.lvl", "two.lvl", "three.lvl", "four.lvl"}, spec.Levels)

	want := map[component.PowerUpType]struct {
		chance   int
		duration float64
	}{
		component.PowerUpSpeed:              {75, 0},
		component.PowerUpSticky:             {75, 20},
		component.PowerUpPassThrough:        {75, 10},
		component.PowerUpPaddleSizeIncrease: {75, 0},
		component.PowerUpConfuse:            {15, 15},
		component.PowerUpChaos:              {15, 15},
	}
	for typ, w := range want {
		ps, ok := spec.PowerUps.Lookup(typ)
		require.True(t, ok, typ.String())
		assert.Equal(t, w.chance, ps.Chance, typ.String())
		assert.Equal(t, w.duration, ps.Duration, typ.String())
	}
	assert.Equal(t, component.Color{R: 1, G: 0.5, B: 1}, spec.PowerUps.StickyColor.Color)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *GameSpec)
	}{
		{"screen", func(s *GameSpec) { s.Screen.Width = 0 }},
		{"paddle", func(s *GameSpec) { s.Paddle.Height = -1 }},
		{"radius", func(s *GameSpec) { s.Ball.Radius = 0 }},
		{"zero_strength", func(s *GameSpec) { s.Ball.Strength = 0 }},
		{"negative_strength", func(s *GameSpec) { s.Ball.Strength = -2 }},
		{"zero_shake", func(s *GameSpec) { s.ShakeSeconds = 0 }},
		{"zero_speed_multiplier", func(s *GameSpec) { s.PowerUps.SpeedMultiplier = 0 }},
		{"negative_speed_multiplier", func(s *GameSpec) { s.PowerUps.SpeedMultiplier = -1.2 }},
		{"negative_size_increase", func(s *GameSpec) { s.PowerUps.SizeIncrease = -50 }},
		{"particles", func(s *GameSpec) { s.Particles.PerTick = -1 }},
		{"levels", func(s *GameSpec) { s.Levels = nil }},
		{"unknown_type", func(s *GameSpec) { s.PowerUps.Types = []PowerUpSpec{{Type: "laser", Chance: 1}} }},
		{"duplicate_type", func(s *GameSpec) {
			s.PowerUps.Types = []PowerUpSpec{{Type: "speed", Chance: 1}, {Type: "speed", Chance: 2}}
		}},
		{"zero_chance", func(s *GameSpec) { s.PowerUps.Types = []PowerUpSpec{{Type: "chaos", Chance: 0}} }},
		{"negative_duration", func(s *GameSpec) { s.PowerUps.Types = []PowerUpSpec{{Type: "chaos", Chance: 1, Duration: -1}} }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadGameSpec()
			require.NoError(t, err)
			c.mutate(spec)
			assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec)
		})
	}

	var nilSpec *GameSpec
	assert.ErrorIs(t, nilSpec.Validate(), ErrInvalidSpec)

	spec, err := LoadGameSpec()
	require.NoError(t, err)
	spec.PowerUps.SizeIncrease = 0
	assert.NoError(t, spec.Validate(), "a zero size increase is a no-op, not an error")
}

func TestParseGameSpec(t *testing.T) {
	_, err := ParseGameSpec([]byte("screen: ["))
	assert.Error(t, err)

	_, err = ParseGameSpec([]byte("name: empty\n"))
	assert.ErrorIs(t, err, ErrInvalidSpec)

	data, err := Load(GameSpecFile)
	require.NoError(t, err)
	spec, err := ParseGameSpec(data)
	require.NoError(t, err)
	assert.Equal(t, "breakout", spec.Name)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    component.Color
		wantErr bool
	}{
		{"list", "[1.0, 0.5, 0.25]", component.Color{R: 1, G: 0.5, B: 0.25}, false},
		{"hex", `"#ff0000"`, component.Color{R: 1}, false},
		{"hex_no_hash", `"00ff00"`, component.Color{G: 1}, false},
		{"short_list", "[1.0, 0.5]", component.Color{}, true},
		{"short_hex", `"#fff"`, component.Color{}, true},
		{"bad_hex", `"#gg0000"`, component.Color{}, true},
		{"map", "{r: 1}", component.Color{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		want FileKind
	}{
		{"prefabs/breakout.yaml", FileSpec},
		{"prefabs/other.YML", FileSpec},
		{"prefabs/scripts/spawn.tengo", FileScript},
		{"levels/one.lvl", FileLevel},
		{"levels/notes.txt", FileUnknown},
		{"levels/one.lvl.swp", FileUnknown},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.path))
		})
	}
}

func TestLoadScriptPrefersDisk(t *testing.T) {
	embedded, err := LoadScript("spawn.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(embedded), "odds")

	same, err := LoadScript("prefabs/scripts/spawn.tengo")
	require.NoError(t, err)
	assert.Equal(t, embedded, same)

	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join("prefabs", "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("prefabs", "scripts", "spawn.tengo"), []byte("odds := 1"), 0o644))

	disk, err := LoadScript("spawn.tengo")
	require.NoError(t, err)
	assert.Equal(t, "odds := 1", string(disk))
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	name := filepath.Join(dir, "one.lvl")
	require.NoError(t, os.WriteFile(name, []byte("1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool {
		got, ok := w.Poll()
		return ok && got == name
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, w.Close())
	for range w.Events {
	}
	_, ok := w.Poll()
	assert.False(t, ok)
}

func TestLevelIndex(t *testing.T) {
	spec := &GameSpec{Levels: []string{"one.lvl", "two.lvl", "three.lvl"}}
	cases := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"one", 0, false},
		{"two.lvl", 1, false},
		{"levels/three.lvl", 2, false},
		{"four", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := spec.LevelIndex(c.name)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
