package cleanblog

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// SiteConfig holds all configuration for a cleanblog site.
type SiteConfig struct {
	Name   string // Site name (default "Blog")
	Author string // Shown in the footer

	Addr         string // Listen address (default ":5003")
	DatabasePath string // SQLite path (default "data/posts.db")

	SessionSecret string // Required: signs session and CSRF cookies
	CookieSecure  bool   // Set true for HTTPS

	LogLevel string // debug, info, warn, error or off (default "info")
}

// SetDefaults fills every empty field with its default value.
func (c *SiteConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.Addr == "" {
		c.Addr = ":5003"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/posts.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads configuration from envFile (a dotenv file, skipped when
// it does not exist) and then from the process environment, which wins.
func LoadConfig(envFile string) (SiteConfig, error) {
	v := viper.New()
	v.SetDefault("SITE_NAME", "Blog")
	v.SetDefault("SITE_AUTHOR", "")
	v.SetDefault("ADDR", ":5003")
	v.SetDefault("SQLITE__PATH", "data/posts.db")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return SiteConfig{}, fmt.Errorf("read %s: %w", envFile, err)
			}
		}
	}

	cfg := SiteConfig{
		Name:          v.GetString("SITE_NAME"),
		Author:        v.GetString("SITE_AUTHOR"),
		Addr:          v.GetString("ADDR"),
		DatabasePath:  sqlitePath(v.GetString("SQLITE__PATH")),
		SessionSecret: v.GetString("SECRET_KEY"),
		CookieSecure:  v.GetBool("COOKIE_SECURE"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
	}
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return SiteConfig{}, err
	}
	cfg.SetDefaults()
	return cfg, nil
}

// sqlitePath accepts a plain file path or an SQLAlchemy-style URI
// ("sqlite:///posts.db", "sqlite:////var/lib/posts.db").
func sqlitePath(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "sqlite:///")
}

func parseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
