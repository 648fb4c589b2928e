package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Identity   Identity
	Signup     Signup
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

// Identity holds the connection to the auth provider's admin API.
// The service role key bypasses row-level security; never expose it
// to clients.
type Identity struct {
	BaseURL        string
	ServiceRoleKey string
}

type Signup struct {
	// SyntheticDomain is the non-routable domain used to build a
	// placeholder email when the user signs up with a handle only.
	SyntheticDomain string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

const defaultSyntheticDomain = "users.local.sona"

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	v.SetEnvPrefix("SONA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Signup.SyntheticDomain == "" {
		c.Signup.SyntheticDomain = defaultSyntheticDomain
	}
	return &c, nil
}

// Validate fails fast on missing deployment configuration so a
// misconfigured instance never reaches the signup path.
func (c *Config) Validate() error {
	var missing []string
	if c.Bun.DSN == "" {
		missing = append(missing, "bun.dsn")
	}
	if c.Identity.BaseURL == "" {
		missing = append(missing, "identity.baseurl")
	}
	if c.Identity.ServiceRoleKey == "" {
		missing = append(missing, "identity.servicerolekey")
	}
	if len(missing) > 0 {
		return errors.New("missing required config: " + strings.Join(missing, ", "))
	}
	return nil
}
