package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GCE"

// Load reads global settings from an optional config file plus environment
// variables. Environment variables use the GCE_ prefix, e.g.
// GCE_AVGINPUTTOKENS=2000. When no path is given, defaults apply.
func Load(path string) (Settings, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("avgInputTokens", defaults.AvgInputTokens)
	v.SetDefault("avgOutputTokens", defaults.AvgOutputTokens)
	v.SetDefault("minTokPerStream", defaults.MinTokPerStream)
	v.SetDefault("prefixCacheHitRate", defaults.PrefixCacheHitRate)
	v.SetDefault("kvCachePrecision", defaults.KVCachePrecision)
	v.SetDefault("projectionMode", defaults.ProjectionMode)
	v.SetDefault("setupLimit", defaults.SetupLimit)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshaling settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
