/*
Copyright 2026 The GPU Cost Explorer Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the workload settings the estimation engine is
// evaluated under, with parsing, validation, and per-model overrides.
package config

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

// GlobalDefaultsKey is the map key holding global defaults in a settings map.
const GlobalDefaultsKey = "default"

// KV cache precision modes.
const (
	KVCacheAuto = "auto"
	KVCacheFP8  = "fp8"
	KVCacheFP16 = "fp16"
)

// Projection modes for the hardware matcher.
const (
	// ProjectionBounded restricts results to real catalog entries; tiers
	// nothing in the catalog can serve are reported as exceeding capacity.
	ProjectionBounded = "bounded"

	// ProjectionAlwaysScale falls back to linearly scaled configurations
	// when the catalog has no sufficient entry.
	ProjectionAlwaysScale = "always-scale"
)

// Settings describes the assumed serving workload and matching policy.
// The zero value is not valid; start from Default().
type Settings struct {
	// ModelID is the model this override applies to (override entries only).
	ModelID string `yaml:"model_id,omitempty" json:"model_id,omitempty"`

	// AvgInputTokens is the assumed prompt length per request.
	AvgInputTokens int `yaml:"avgInputTokens,omitempty" json:"avgInputTokens,omitempty"`

	// AvgOutputTokens is the assumed generation length per request.
	AvgOutputTokens int `yaml:"avgOutputTokens,omitempty" json:"avgOutputTokens,omitempty"`

	// MinTokPerStream is the decode throughput quality floor in
	// tokens/second/stream. Configurations below it are rejected.
	MinTokPerStream float64 `yaml:"minTokPerStream,omitempty" json:"minTokPerStream,omitempty"`

	// PrefixCacheHitRate is the expected prefix-cache hit rate in percent
	// (0-100). Higher hit rates lower the effective per-request KV cost.
	PrefixCacheHitRate float64 `yaml:"prefixCacheHitRate,omitempty" json:"prefixCacheHitRate,omitempty"`

	// KVCachePrecision selects the KV cache element width: "auto", "fp8",
	// or "fp16". Auto picks FP8 on generations that support it.
	KVCachePrecision string `yaml:"kvCachePrecision,omitempty" json:"kvCachePrecision,omitempty"`

	// ProjectionMode is "bounded" or "always-scale".
	ProjectionMode string `yaml:"projectionMode,omitempty" json:"projectionMode,omitempty"`

	// SetupLimit caps how many ranked options a matrix cell keeps.
	SetupLimit int `yaml:"setupLimit,omitempty" json:"setupLimit,omitempty"`
}

// Default returns the engine's baseline settings: a chat-style workload with
// no prefix caching assumed.
func Default() Settings {
	return Settings{
		AvgInputTokens:     1000,
		AvgOutputTokens:    500,
		MinTokPerStream:    10,
		PrefixCacheHitRate: 0,
		KVCachePrecision:   KVCacheAuto,
		ProjectionMode:     ProjectionAlwaysScale,
		SetupLimit:         3,
	}
}

// CacheUtilization converts the prefix-cache hit rate into the fraction of
// per-request KV memory that actually has to be resident.
func (s *Settings) CacheUtilization() float64 {
	return 1 - s.PrefixCacheHitRate/100
}

// Validate checks for invalid settings values.
func (s *Settings) Validate() error {
	if s.AvgInputTokens < 0 {
		return fmt.Errorf("avgInputTokens must be >= 0, got %d", s.AvgInputTokens)
	}
	if s.AvgOutputTokens < 0 {
		return fmt.Errorf("avgOutputTokens must be >= 0, got %d", s.AvgOutputTokens)
	}
	if s.MinTokPerStream < 0 {
		return fmt.Errorf("minTokPerStream must be >= 0, got %.1f", s.MinTokPerStream)
	}
	if s.PrefixCacheHitRate < 0 || s.PrefixCacheHitRate > 100 {
		return fmt.Errorf("prefixCacheHitRate must be between 0 and 100, got %.1f", s.PrefixCacheHitRate)
	}
	switch s.KVCachePrecision {
	case "", KVCacheAuto, KVCacheFP8, KVCacheFP16:
	default:
		return fmt.Errorf("kvCachePrecision must be %q, %q or %q, got %q",
			KVCacheAuto, KVCacheFP8, KVCacheFP16, s.KVCachePrecision)
	}
	switch s.ProjectionMode {
	case "", ProjectionBounded, ProjectionAlwaysScale:
	default:
		return fmt.Errorf("projectionMode must be %q or %q, got %q",
			ProjectionBounded, ProjectionAlwaysScale, s.ProjectionMode)
	}
	if s.SetupLimit < 0 {
		return fmt.Errorf("setupLimit must be >= 0, got %d", s.SetupLimit)
	}
	return nil
}

// SettingsData holds settings for all models, keyed by model ID, with global
// defaults under GlobalDefaultsKey.
type SettingsData map[string]Settings

// ParseSettingsMap parses per-model settings from a string map, e.g. the data
// section of a deployment config. Entry format:
//   - "default": global defaults for all models
//   - "<override-name>": per-model settings with a model_id field
//
// Invalid entries are skipped with a log line rather than failing the whole
// map.
func ParseSettingsMap(logger logr.Logger, data map[string]string) SettingsData {
	out := make(SettingsData)
	if data == nil {
		return out
	}

	seen := make(map[string]string)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var s Settings
		if err := yaml.Unmarshal([]byte(data[key]), &s); err != nil {
			logger.Info("Failed to parse settings entry, skipping",
				"key", key,
				"error", err)
			continue
		}
		if err := s.Validate(); err != nil {
			logger.Info("Invalid settings entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if key == GlobalDefaultsKey {
			out[GlobalDefaultsKey] = s
			continue
		}
		if s.ModelID == "" {
			logger.Info("Skipping settings entry without model_id field", "key", key)
			continue
		}
		if winner, dup := seen[s.ModelID]; dup {
			logger.Info("Duplicate model_id in settings map - first key wins",
				"model_id", s.ModelID,
				"winningKey", winner,
				"duplicateKey", key)
			continue
		}
		seen[s.ModelID] = key
		out[s.ModelID] = s
	}

	return out
}

// ForModel returns the effective settings for a model: the model override
// merged over global defaults, which in turn merge over Default().
func (data SettingsData) ForModel(modelID string) Settings {
	result := Default()
	if defaults, ok := data[GlobalDefaultsKey]; ok {
		result = merge(result, defaults)
	}
	if override, ok := data[modelID]; ok {
		result = merge(result, override)
	}
	return result
}

// merge overlays the non-zero fields of override onto base.
func merge(base, override Settings) Settings {
	result := base
	if override.ModelID != "" {
		result.ModelID = override.ModelID
	}
	if override.AvgInputTokens != 0 {
		result.AvgInputTokens = override.AvgInputTokens
	}
	if override.AvgOutputTokens != 0 {
		result.AvgOutputTokens = override.AvgOutputTokens
	}
	if override.MinTokPerStream != 0 {
		result.MinTokPerStream = override.MinTokPerStream
	}
	if override.PrefixCacheHitRate != 0 {
		result.PrefixCacheHitRate = override.PrefixCacheHitRate
	}
	if override.KVCachePrecision != "" {
		result.KVCachePrecision = override.KVCachePrecision
	}
	if override.ProjectionMode != "" {
		result.ProjectionMode = override.ProjectionMode
	}
	if override.SetupLimit != 0 {
		result.SetupLimit = override.SetupLimit
	}
	return result
}
