package theme

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"
)

// Config is a YAML theme override. Colors are hex strings; empty fields
// leave the base theme untouched.
type Config struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Caption  string   `yaml:"caption"`
	Axis     string   `yaml:"axis"`
	Label    string   `yaml:"label"`
	Shade    string   `yaml:"shade"`
	Series   []string `yaml:"series"`
}

// Load reads a Config from YAML.
func Load(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("theme: decoding config: %w", err)
	}
	return c, nil
}

// LoadFile reads a Config from a YAML file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("theme: opening config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply overlays the config on a base theme and returns the result.
func (c Config) Apply(base Theme) Theme {
	t := base
	if c.Title != "" {
		t.Title = t.Title.Foreground(lipgloss.Color(c.Title))
	}
	if c.Subtitle != "" {
		t.Subtitle = t.Subtitle.Foreground(lipgloss.Color(c.Subtitle))
	}
	if c.Caption != "" {
		t.Caption = t.Caption.Foreground(lipgloss.Color(c.Caption))
	}
	if c.Axis != "" {
		t.Axis = t.Axis.Foreground(lipgloss.Color(c.Axis))
	}
	if c.Label != "" {
		t.Label = t.Label.Foreground(lipgloss.Color(c.Label))
	}
	if c.Shade != "" {
		t.Shade = lipgloss.Color(c.Shade)
	}
	if len(c.Series) > 0 {
		t.Series = append([]string(nil), c.Series...)
	}
	return t
}
