package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is where on-disk overrides of the embedded prefabs live, relative to
// the working directory.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Load reads a spec file such as "breakout.yaml".
func Load(name string) ([]byte, error) {
	return read(trimDir(name))
}

// LoadScript reads a tengo script from scripts/. Callers may pass a bare
// file name or a path under prefabs/scripts.
func LoadScript(name string) ([]byte, error) {
	return read(path.Join("scripts", path.Base(trimDir(name))))
}

// read prefers a copy under Dir so edited files apply without a rebuild.
func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(FS, clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return data, nil
}

func trimDir(name string) string {
	s := filepath.ToSlash(name)
	s, _ = strings.CutPrefix(s, Dir+"/")
	return s
}
