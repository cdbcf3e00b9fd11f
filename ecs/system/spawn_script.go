package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/breakout/ecs"
	"github.com/milk9111/breakout/ecs/component"
	"github.com/milk9111/breakout/prefabs"
)

// spawnScript wraps the compiled odds script. It recompiles whenever the
// configured name or the world's script version changes, and remembers a
// failed compile so a broken script is reported once.
type spawnScript struct {
	name     string
	version  int
	loaded   bool
	compiled *tengo.Compiled
}

const spawnDispatchScript = `
__odds = odds(__kind, __chance, __level)
`

func (s *spawnScript) odds(w *ecs.World, t component.PowerUpType, chance int) int {
	name := strings.TrimSpace(w.Spec().SpawnScript)
	if s == nil || name == "" {
		return chance
	}

	if !s.loaded || s.name != name || s.version != w.ScriptVersion() {
		s.name = name
		s.version = w.ScriptVersion()
		s.loaded = true
		compiled, err := compileSpawnScript(name)
		if err != nil {
			s.compiled = nil
			w.Logger().Warn("spawn script unavailable, using configured odds", "script", name, "err", err)
		} else {
			s.compiled = compiled
		}
	}
	if s.compiled == nil {
		return chance
	}

	n, err := s.run(t, chance, w.LevelIndex())
	if err != nil {
		w.Logger().Warn("spawn script failed, using configured odds", "script", name, "type", t, "err", err)
		return chance
	}
	return n
}

func (s *spawnScript) run(t component.PowerUpType, chance, level int) (int, error) {
	if err := s.compiled.Set("__kind", t.String()); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__chance", chance); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__level", level); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}
	v := s.compiled.Get("__odds")
	if v.IsUndefined() {
		return 0, fmt.Errorf("odds returned undefined for %s", t)
	}
	return v.Int(), nil
}

func compileSpawnScript(name string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + spawnDispatchScript))
	_ = script.Add("__kind", "")
	_ = script.Add("__chance", 0)
	_ = script.Add("__level", 0)
	_ = script.Add("__odds", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return compiled, nil
}
