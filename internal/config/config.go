package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the file.
const (
	EnvProfile = "HUDDLE_PROFILE"
	EnvLocale  = "HUDDLE_LOCALE"
)

// Config represents the global ~/.huddle/config.toml.
type Config struct {
	DefaultProfile string   `toml:"default_profile"`
	Locale         string   `toml:"locale"`
	FriendsTab     string   `toml:"friends_tab"`
	SignInDelay    Duration `toml:"sign_in_delay"`
	SignUpDelay    Duration `toml:"sign_up_delay"`
	SeedOnStart    bool     `toml:"seed_on_start"`
	PreviewWidth   int      `toml:"preview_width"`
}

// Duration is a time.Duration written as a string such as "1.5s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultProfile: "main",
		Locale:         "en_US",
		FriendsTab:     "online",
		SignInDelay:    Duration{1500 * time.Millisecond},
		SignUpDelay:    Duration{2 * time.Second},
		SeedOnStart:    true,
		PreviewWidth:   48,
	}
}

// Load reads config from the given path on top of the defaults.
// Returns an error if the file is missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects values no component can use.
func (c *Config) Validate() error {
	switch c.FriendsTab {
	case "online", "all":
	default:
		return fmt.Errorf("friends_tab must be online or all, got %q", c.FriendsTab)
	}
	if c.PreviewWidth <= 0 {
		return fmt.Errorf("preview_width must be positive, got %d", c.PreviewWidth)
	}
	if c.SignInDelay.Duration < 0 || c.SignUpDelay.Duration < 0 {
		return errors.New("delays must not be negative")
	}
	return nil
}

// ApplyEnv overlays HUDDLE_* overrides. Values from envFile (a dotenv file,
// optional) are used unless the process environment sets the same key.
func (c *Config) ApplyEnv(envFile string) error {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, key := range []string{EnvProfile, EnvLocale} {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			vars[key] = v
		}
	}

	if v := vars[EnvProfile]; v != "" {
		c.DefaultProfile = v
	}
	if v := vars[EnvLocale]; v != "" {
		c.Locale = v
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
