package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings are the runtime knobs of the demo.
type Settings struct {
	// Config is the expander configuration file. Empty uses the built-in screens.
	Config string `mapstructure:"config"`
	// State is the file widget state is saved to and restored from.
	State string `mapstructure:"state"`
	// Log receives log output while the terminal is in use.
	Log string `mapstructure:"log"`
	// FrameInterval is the time between frames.
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	// Watch rebuilds the screens when Config changes.
	Watch bool `mapstructure:"watch"`
}

// LoadSettings reads settings from defaults, an optional settings file and
// EXPANDER_DEMO_* environment variables. Overrides (from flags) win.
func LoadSettings(overrides map[string]string) (Settings, error) {
	v := viper.New()

	v.SetDefault("config", "")
	v.SetDefault("state", filepath.Join(userStateDir(), "expander-demo", "state.yaml"))
	v.SetDefault("log", filepath.Join(os.TempDir(), "expander-demo.log"))
	v.SetDefault("frame_interval", 16*time.Millisecond)
	v.SetDefault("watch", true)

	v.SetConfigType("yaml")
	settingsPath := overrides["settings"]
	if settingsPath == "" {
		settingsPath = os.Getenv("EXPANDER_DEMO_SETTINGS")
	}
	if settingsPath != "" {
		v.SetConfigFile(settingsPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "expander-demo"))
		}
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("EXPANDER_DEMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if settingsPath != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	for key, value := range overrides {
		if key == "settings" {
			continue
		}
		v.Set(key, value)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.FrameInterval <= 0 {
		return Settings{}, fmt.Errorf("frame_interval must be positive, got %v", s.FrameInterval)
	}
	return s, nil
}

func userStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return os.TempDir()
}
