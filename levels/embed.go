package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed *.lvl
var LevelsFS embed.FS

// Load reads a tile grid file. A copy under levels/ on disk wins over the
// embedded one so edited levels reload without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", clean)); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return data, nil
}

func cleanLevelPath(name string) string {
	s := path.Base(filepath.ToSlash(name))
	if path.Ext(s) == "" {
		s += ".lvl"
	}
	return s
}
