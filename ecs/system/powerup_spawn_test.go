package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/entity"
	"github.com/milk9111/breakout/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldSpawn(t *testing.T) {
	cases := []struct {
		name   string
		rng    constRand
		chance int
		want   bool
	}{
		{"zero_roll_wins", 0, 75, true},
		{"other_roll_loses", 3, 75, false},
		{"one_in_one", 0, 1, true},
		{"zero_chance", 0, 0, false},
		{"negative_chance", 0, -4, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ShouldSpawn(c.rng, c.chance))
		})
	}
	assert.False(t, ShouldSpawn(nil, 1))
}

func TestSpawnRollsConfiguredOdds(t *testing.T) {
	rng := &recordRand{}
	w := newWorld(t, rng)
	brick := entity.NewBrick(2, cp.Vector{X: 10, Y: 20}, cp.Vector{X: 50, Y: 20})

	n := NewPowerUpSpawner().Spawn(w, brick.Position)

	assert.Equal(t, 6, n)
	assert.Equal(t, []int{75, 75, 75, 75, 15, 15}, rng.bounds)
	for _, p := range livePowerUps(t, w) {
		assert.Equal(t, brick.Position, p.body.Position)
	}
}

func TestSpawnWithoutScript(t *testing.T) {
	rng := &recordRand{}
	w := newWorld(t, rng, func(s *prefabs.GameSpec) { s.SpawnScript = "" })
	brick := entity.NewBrick(2, cp.Vector{}, cp.Vector{X: 50, Y: 20})

	NewPowerUpSpawner().Spawn(w, brick.Position)

	assert.Equal(t, []int{75, 75, 75, 75, 15, 15}, rng.bounds)
}

func TestSpawnScriptAdjustsOdds(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join("prefabs", "scripts"), 0o755))
	writeScript := func(src string) {
		require.NoError(t, os.WriteFile(filepath.Join("prefabs", "scripts", "odds.tengo"), []byte(src), 0o644))
	}
	writeScript(`
odds := func(kind, chance, level) {
	if kind == "chaos" {
		return 0
	}
	return chance * 2 + level
}
`)

	rng := &recordRand{}
	w := newWorld(t, rng, func(s *prefabs.GameSpec) { s.SpawnScript = "odds.tengo" })
	w.SelectLevel(1)
	brick := entity.NewBrick(2, cp.Vector{}, cp.Vector{X: 50, Y: 20})
	spawner := NewPowerUpSpawner()

	n := spawner.Spawn(w, brick.Position)
	assert.Equal(t, 5, n, "chaos disabled by the script")
	assert.Equal(t, []int{151, 151, 151, 151, 31}, rng.bounds)

	writeScript(`odds := func(kind, chance, level) { return 1 }`)
	rng.bounds = nil
	spawner.Spawn(w, brick.Position)
	assert.Equal(t, []int{151, 151, 151, 151, 31}, rng.bounds, "cached until invalidated")

	w.InvalidateScripts()
	rng.bounds = nil
	spawner.Spawn(w, brick.Position)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, rng.bounds)
}

func TestBrokenSpawnScriptFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join("prefabs", "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("prefabs", "scripts", "broken.tengo"), []byte(`odds := func(`), 0o644))

	cases := []string{"broken.tengo", "missing.tengo"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			rng := &recordRand{}
			w := newWorld(t, rng, func(s *prefabs.GameSpec) { s.SpawnScript = name })
			brick := entity.NewBrick(2, cp.Vector{}, cp.Vector{X: 50, Y: 20})

			NewPowerUpSpawner().Spawn(w, brick.Position)

			assert.Equal(t, []int{75, 75, 75, 75, 15, 15}, rng.bounds)
		})
	}
}
