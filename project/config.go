package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

type (
	Config struct {
		Answers       map[string]any `toml:"answers"`
		ComponentsDir string         `toml:"components_dir"`
		Extension     string         `toml:"extension"`
		Install       []string       `toml:"install"`
	}
)

const ConfigFileName = ".librarian.toml"

func DefaultConfig() Config {
	return Config{
		Answers:       map[string]any{},
		ComponentsDir: filepath.Join("src", "components"),
		Extension:     "tsx",
		Install:       []string{"npm", "i"},
	}
}

// LoadConfig reads .librarian.toml from dir. A missing file yields [DefaultConfig]; keys
// left out of the file keep their defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, ConfigFileName)

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to parse %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown keys %v in %q", undecoded, path)
	}

	if len(cfg.Install) == 0 {
		return cfg, fmt.Errorf("install command in %q must not be empty", path)
	}

	if cfg.Answers == nil {
		cfg.Answers = map[string]any{}
	}

	return cfg, nil
}

// AnswerNames returns the keys of the [answers] table in sorted order.
func (c Config) AnswerNames() []string {
	names := make([]string, 0, len(c.Answers))

	for name := range c.Answers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
