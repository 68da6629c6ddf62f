package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	// MessageTimeout is how long a status message stays visible, in seconds.
	MessageTimeout int `toml:"message-timeout"`
}

type Theme struct {
	StatuslineForeground string `toml:"statusline-foreground"`
	StatuslineBackground string `toml:"statusline-background"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			MessageTimeout: 5,
		},
		Theme: Theme{
			StatuslineForeground: "#3F3F3F",
			StatuslineBackground: "#EFEFEF",
		},
		Keymap: map[string]string{
			"ctrl+c":    "quit",
			"up":        "move_up",
			"down":      "move_down",
			"left":      "move_left",
			"right":     "move_right",
			"pgup":      "page_up",
			"pgdn":      "page_down",
			"home":      "line_start",
			"end":       "line_end",
			"backspace": "backspace",
			"del":       "delete_char",
		},
	}
}

// Load reads config.toml from ConfigDir. A missing file yields Default.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	cfg, err := LoadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile merges the file at path over Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.MessageTimeout > 0 {
		cfg.Editor.MessageTimeout = userCfg.Editor.MessageTimeout
	}
	if userCfg.Theme.StatuslineForeground != "" {
		cfg.Theme.StatuslineForeground = userCfg.Theme.StatuslineForeground
	}
	if userCfg.Theme.StatuslineBackground != "" {
		cfg.Theme.StatuslineBackground = userCfg.Theme.StatuslineBackground
	}
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("HECTO_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "hecto"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hecto"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
