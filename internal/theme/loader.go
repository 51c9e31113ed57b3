package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader resolves a theme name or path to a Theme.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard search paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "inkover", "themes"),
		SystemDir: "/usr/share/inkover/themes",
	}
}

// Load resolves name in order: an existing file path, a built-in theme
// (default, dark, high_contrast), the user config dir, the system dir.
func (l *Loader) Load(name string) (*Theme, error) {
	if _, err := os.Stat(name); name != "" && err == nil {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Parse(f)
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if t, ok := builtin(lower); ok {
		return t, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Parse(f)
	}

	return nil, fmt.Errorf("theme '%s' not found", name)
}
