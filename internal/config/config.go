package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samvad-hq/vzaar-go/pkg/vzaar"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName            string        `mapstructure:"app_name"`
	LogLevel           string        `mapstructure:"log_level"`
	ClientID           string        `mapstructure:"vzaar_client_id"`
	AuthToken          string        `mapstructure:"vzaar_client_token"`
	RedirectURL        string        `mapstructure:"video_success_redirect"`
	MaxVideoSize       int64         `mapstructure:"max_video_size"`
	BaseURL            string        `mapstructure:"vzaar_base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
	ProfilesFile       string        `mapstructure:"profiles_file"`
	Profile            string        `mapstructure:"vzaar_profile"`
}

var keys = []string{
	"app_name", "log_level", "vzaar_client_id", "vzaar_client_token",
	"video_success_redirect", "max_video_size", "vzaar_base_url",
	"http_timeout", "profiles_file", "vzaar_profile",
}

// Load reads configuration from environment variables and the optional configs/.env file.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "vzaar")
	v.SetDefault("log_level", "info")
	v.SetDefault("vzaar_base_url", vzaar.DefaultBaseURL)
	v.SetDefault("max_video_size", 0)
	v.SetDefault("http_timeout", 30) // seconds

	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxVideoSize < 0 {
		return nil, fmt.Errorf("invalid max_video_size (must not be negative)")
	}
	if cfg.HTTPTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid http_timeout (must not be negative seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	cfg.ProfilesFile = strings.TrimSpace(cfg.ProfilesFile)
	cfg.Profile = strings.TrimSpace(cfg.Profile)

	return &cfg, nil
}

// VzaarSettings returns the client settings, applying the selected profile on top of the environment.
func (c *Config) VzaarSettings() (vzaar.Settings, error) {
	if c == nil {
		return vzaar.Settings{}, fmt.Errorf("config must not be nil")
	}

	settings := vzaar.Settings{
		ClientID:     c.ClientID,
		AuthToken:    c.AuthToken,
		RedirectURL:  c.RedirectURL,
		MaxVideoSize: c.MaxVideoSize,
		BaseURL:      c.BaseURL,
	}
	if c.Profile == "" {
		return settings, nil
	}
	if c.ProfilesFile == "" {
		return vzaar.Settings{}, fmt.Errorf("profile %q selected but profiles_file is not set", c.Profile)
	}

	reg, err := LoadProfiles(c.ProfilesFile)
	if err != nil {
		return vzaar.Settings{}, err
	}
	p, ok := reg.ByID(c.Profile)
	if !ok {
		return vzaar.Settings{}, fmt.Errorf("profile %q not found in %s", c.Profile, c.ProfilesFile)
	}
	return p.apply(settings), nil
}
