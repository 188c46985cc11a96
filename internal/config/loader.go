package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"firestige.xyz/strix/internal/log"
)

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("program", "pass")
	v.SetDefault("capture.backend", "afpacket")
	v.SetDefault("capture.snaplen", 65535)
	v.SetDefault("capture.buffer_size", 8*1024*1024)
	v.SetDefault("capture.timeout_ms", 100)
	v.SetDefault("capture.promiscuous", true)
	v.SetDefault("capture.workers", 1)
	v.SetDefault("capture.headroom", 32)
	v.SetDefault("vlan.push_id", 1)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.listen", "127.0.0.1:9167")
	v.SetDefault("metrics.path", "/metrics")

	def := log.DefaultConfig()
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
}
