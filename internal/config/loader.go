package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default -> fallback
// Only an explicit customPath that cannot be read or parsed is an error.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T
	filename := gameID + ".yaml"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			var c T
			if err := yaml.Unmarshal(data, &c); err == nil {
				return c, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		var c T
		if err := yaml.Unmarshal(data, &c); err == nil {
			return c, nil
		}
	}

	if data := GetDefaultYAML(gameID); data != nil {
		var c T
		if err := yaml.Unmarshal(data, &c); err == nil {
			return c, nil
		}
	}
	return fallback(), nil
}

// LoadPlatformer loads the platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load("platformer", customPath, DefaultPlatformerConfig)
}

// LoadRunner loads the endless runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner", customPath, DefaultRunnerConfig)
}

// LoadShooter loads the space shooter configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("shooter", customPath, DefaultShooterConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.Invulnerability = 2.0
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.Speed *= 1.5
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.MaxSpawn = cfg.Enemies.MinSpawn + (cfg.Enemies.MaxSpawn-cfg.Enemies.MinSpawn)/2
	}
}
