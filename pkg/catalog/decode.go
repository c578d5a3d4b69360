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

package catalog

import (
	"encoding/json"
	"fmt"
)

// Decoding helpers for the normalized JSON records produced by the data
// pipeline (models.json, gpus.json, gpu_specs.json, benchmarks.json,
// sota_scores.json). How the bytes got here — file, HTTP, embedded — is the
// caller's concern.

// DecodeModels parses a models.json payload.
func DecodeModels(data []byte) ([]Model, error) {
	var models []Model
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("decoding model records: %w", err)
	}
	for i := range models {
		m := &models[i]
		if m.Name == "" {
			return nil, fmt.Errorf("model record %d: missing model_name", i)
		}
		if m.Architecture == "" {
			m.Architecture = ArchitectureDense
		}
		if m.IsMoE() && m.ActiveParamsB != nil && m.LearnableParamsB != nil &&
			*m.ActiveParamsB > *m.LearnableParamsB {
			return nil, fmt.Errorf("model record %d (%s): active_params_b %.1f exceeds learnable_params_b %.1f",
				i, m.Name, *m.ActiveParamsB, *m.LearnableParamsB)
		}
	}
	return models, nil
}

// DecodeOfferings parses a gpus.json payload. TotalVRAMGB is filled in from
// per-GPU VRAM and count when the record omits it.
func DecodeOfferings(data []byte) ([]Offering, error) {
	var offerings []Offering
	if err := json.Unmarshal(data, &offerings); err != nil {
		return nil, fmt.Errorf("decoding GPU offerings: %w", err)
	}
	for i := range offerings {
		o := &offerings[i]
		if o.GPUName == "" {
			return nil, fmt.Errorf("offering record %d: missing gpu_name", i)
		}
		if o.GPUCount <= 0 {
			return nil, fmt.Errorf("offering record %d (%s): gpu_count must be positive, got %d", i, o.GPUName, o.GPUCount)
		}
		if o.TotalVRAMGB == 0 {
			o.TotalVRAMGB = o.VRAMGB * float64(o.GPUCount)
		}
	}
	return offerings, nil
}

// DecodeThroughputSpecs parses a gpu_specs.json payload into a lookup map
// keyed by GPU name. Most deployments use the built-in
// DefaultThroughputSpecs instead; this path exists for pinned snapshots.
func DecodeThroughputSpecs(data []byte) (map[string]ThroughputSpec, error) {
	var specs []ThroughputSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("decoding GPU specs: %w", err)
	}
	out := make(map[string]ThroughputSpec, len(specs))
	for i, s := range specs {
		if s.GPUName == "" {
			return nil, fmt.Errorf("GPU spec record %d: missing gpu_name", i)
		}
		out[s.GPUName] = s
	}
	return out, nil
}

// DecodeBenchmarks parses a benchmarks.json payload.
func DecodeBenchmarks(data []byte) ([]BenchmarkEntry, error) {
	var entries []BenchmarkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding benchmark entries: %w", err)
	}
	return entries, nil
}

// DecodeSotaScores parses a sota_scores.json payload.
func DecodeSotaScores(data []byte) ([]SotaEntry, error) {
	var entries []SotaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding SOTA scores: %w", err)
	}
	return entries, nil
}
