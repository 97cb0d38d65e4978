package config

import (
	"bytes"
	_ "embed"
	"time"

	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// ---- Root ----

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Provider  ProviderConfig  `mapstructure:"provider"`
}

// ---- Leaf structs ----

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// RedisConfig is optional; rate limiting degrades to allow-all when no
// address is configured.
type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

type RateLimitConfig struct {
	RPS int `mapstructure:"rps"`
}

type ProviderConfig struct {
	URL       string `mapstructure:"url"`
	APIKey    string `mapstructure:"api_key"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// Load reads embedded defaults, merges user YAML (if provided), and
// applies env overrides (EMAILGW_*). The provider credential also
// honors the plain SENDGRID_API_KEY variable.
func Load(path string) (Config, error) {
	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		_ = v.MergeInConfig()
	}

	// env override (EMAILGW_*)
	v.SetEnvPrefix("EMAILGW")
	v.AutomaticEnv()
	_ = v.BindEnv("provider.api_key", "EMAILGW_PROVIDER_API_KEY", "SENDGRID_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
