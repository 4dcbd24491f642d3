/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mikeb26/kyutd/internal"
	"github.com/spf13/viper"
)

// Config holds kyutd settings. Command line flags override these.
type Config struct {
	Cache   CacheConfig   `mapstructure:"cache"`
	Publish PublishConfig `mapstructure:"publish"`
	Render  RenderConfig  `mapstructure:"render"`
	Lint    LintConfig    `mapstructure:"lint"`
	Discord DiscordConfig `mapstructure:"discord"`
}

// CacheConfig controls caching of rosters fetched over http.
type CacheConfig struct {
	Bucket string        `mapstructure:"bucket"`
	Gzip   bool          `mapstructure:"gzip"`
	MaxAge time.Duration `mapstructure:"max_age"`
}

// PublishConfig is where rendered brackets are uploaded.
type PublishConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

type RenderConfig struct {
	AffiliationWidth int  `mapstructure:"affiliation_width"`
	Shorten          bool `mapstructure:"shorten"`
}

type LintConfig struct {
	MaxRatio float64 `mapstructure:"max_ratio"`
}

// DiscordConfig holds the bot application's credentials.
type DiscordConfig struct {
	AppID     string `mapstructure:"app_id"`
	Token     string `mapstructure:"token"`
	PublicKey string `mapstructure:"public_key"`
	CmdID     string `mapstructure:"cmd_id"`
	// CmdHash is the hash of the last registered command definition.
	CmdHash   string `mapstructure:"cmd_hash"`
	Listen    string `mapstructure:"listen"`
}

// Load reads configuration from file and env. The file is $KYUTD_CONFIG or
// ~/.config/kyutd/config.toml and is optional. Env vars use the prefix
// KYUTD_, e.g. KYUTD_PUBLISH_BUCKET.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("cache.bucket", "")
	v.SetDefault("cache.gzip", true)
	v.SetDefault("cache.max_age", internal.DefaultCacheMaxAgeHours*time.Hour)
	v.SetDefault("publish.bucket", "")
	v.SetDefault("publish.prefix", "brackets")
	v.SetDefault("render.affiliation_width", internal.DefaultAffiliationWidth)
	v.SetDefault("render.shorten", false)
	v.SetDefault("lint.max_ratio", 0.34)
	v.SetDefault("discord.app_id", "")
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.public_key", "")
	v.SetDefault("discord.cmd_id", "")
	v.SetDefault("discord.cmd_hash", "")
	v.SetDefault("discord.listen", ":8080")

	v.SetConfigType("toml")
	cfgPath := os.Getenv("KYUTD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "kyutd"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KYUTD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file has to exist
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("unable to read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return c, nil
}
