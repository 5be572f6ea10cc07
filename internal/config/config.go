package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	appDirName            = "lifeos"
	defaultDBName         = "sync.db"
	defaultStateDirName   = "state"
)

type Keymap struct {
	Quit         string `toml:"quit"`
	Add          string `toml:"add"`
	Confirm      string `toml:"confirm"`
	Cancel       string `toml:"cancel"`
	Import       string `toml:"import"`
	Remove       string `toml:"remove"`
	Start        string `toml:"start"`
	Timer        string `toml:"timer"`
	Complete     string `toml:"complete"`
	Skip         string `toml:"skip"`
	Reset        string `toml:"reset"`
	NextTab      string `toml:"next_tab"`
	ToggleMoment string `toml:"toggle_momentum"`
	ToggleWeekly string `toml:"toggle_weekly"`
}

type Config struct {
	DBPath   string `toml:"db_path"`
	StateDir string `toml:"state_dir"`
	Keys     Keymap `toml:"keys"`
}

// ResolveConfigPath places the config under the user config dir, falling
// back to the working directory when that is unavailable.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	def := defaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.StateDir == "" {
		cfg.StateDir = def.StateDir
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	base := "."
	if dir, err := os.UserConfigDir(); err == nil {
		base = filepath.Join(dir, appDirName)
	}
	return Config{
		DBPath:   filepath.Join(base, defaultDBName),
		StateDir: filepath.Join(base, defaultStateDirName),
		Keys: Keymap{
			Quit:         "q",
			Add:          "a",
			Confirm:      "enter",
			Cancel:       "esc",
			Import:       "i",
			Remove:       "d",
			Start:        "s",
			Timer:        " ",
			Complete:     "c",
			Skip:         "x",
			Reset:        "r",
			NextTab:      "tab",
			ToggleMoment: "m",
			ToggleWeekly: "w",
		},
	}
}
