package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds viewer configuration.
type Config struct {
	Deck DeckConfig
	UI   UIConfig
}

// DeckConfig locates the slide deck document.
type DeckConfig struct {
	Path string
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	AltScreen bool
	Mouse     bool
}

// Load reads configuration from file and env. Env var overrides use prefix CAROUSEL_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("deck.path", "")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CAROUSEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "carousel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAROUSEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
