package tui

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the optional on-disk palette override: a small TOML file
// decoded with BurntSushi/toml.
type Theme struct {
	Accent     string `toml:"accent"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Error      string `toml:"error"`
}

// LoadTheme reads and decodes a theme file at path, returning an error if
// the file cannot be read or decoded. Callers only invoke LoadTheme when the
// user passed -theme explicitly; an unreadable requested theme file is what
// aborts startup, not an absent -theme flag.
func LoadTheme(path string) (Theme, error) {
	var th Theme
	if _, err := toml.DecodeFile(path, &th); err != nil {
		return Theme{}, fmt.Errorf("tui: load theme %q: %w", path, err)
	}
	return th, nil
}

// ApplyTheme overrides the default palette with any non-empty fields in
// th, then rebuilds the derived styles.
func ApplyTheme(th Theme) {
	if th.Accent != "" {
		colorAccent = lipgloss.Color(th.Accent)
	}
	if th.Foreground != "" {
		colorWhite = lipgloss.Color(th.Foreground)
	}
	if th.Dim != "" {
		colorDim = lipgloss.Color(th.Dim)
	}
	if th.Error != "" {
		colorRed = lipgloss.Color(th.Error)
	}
	rebuildStyles()
}

// ThemeFileExists reports whether path names a readable regular file,
// used by main.go to decide whether a missing -theme path is fatal.
func ThemeFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
