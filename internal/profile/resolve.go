package profile

import (
	"fmt"

	"github.com/matheus3301/huddle/internal/config"
)

const DefaultName = "main"

// Resolve determines the active profile name using precedence:
// 1. flagOverride (--profile flag)
// 2. HUDDLE_PROFILE, from the environment or ~/.huddle/.env
// 3. config.toml default_profile
// 4. "main"
//
// cfg must come from LoadConfig so the env overrides are already applied.
func Resolve(flagOverride string, cfg *config.Config) string {
	if flagOverride != "" {
		return flagOverride
	}
	if cfg != nil && cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return DefaultName
}

// LoadConfig reads config.toml and applies env overrides. A missing file
// yields the defaults; a file that fails to parse or validate is an error.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyEnv(EnvPath()); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
