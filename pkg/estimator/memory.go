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

package estimator

import (
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// MemoryFootprint summarizes a model's weight memory at a resolved precision.
// TotalGB governs VRAM capacity, ActiveGB governs per-decode-step HBM
// traffic; for sparse models the two differ and must not be conflated.
type MemoryFootprint struct {
	Precision Precision
	TotalGB   *float64
	ActiveGB  *float64
}

// Footprint resolves a model's precision and computes both memory figures.
func Footprint(m *catalog.Model) MemoryFootprint {
	p := ResolvePrecision(m)
	return MemoryFootprint{
		Precision: p,
		TotalGB:   TotalMemoryGB(m, p),
		ActiveGB:  ActiveMemoryGB(m, p),
	}
}

// usesMixedSplit reports whether the mixed-precision scheme applies: the
// model declares a routed-expert parameter count and the resolved precision
// is INT4. A precision override away from INT4 disables the split.
func usesMixedSplit(m *catalog.Model, p Precision) bool {
	return p == INT4 && m.RoutedExpertParamsB != nil && m.LearnableParamsB != nil
}

// TotalMemoryGB returns the full weight footprint in GB, or nil when the
// parameter count is unknown.
//
// Mixed-precision INT4 models store routed experts at the INT4 rate and
// everything else (attention, shared layers) at BF16.
func TotalMemoryGB(m *catalog.Model, p Precision) *float64 {
	if m == nil || m.LearnableParamsB == nil {
		return nil
	}
	total := *m.LearnableParamsB

	if usesMixedSplit(m, p) {
		routed := *m.RoutedExpertParamsB
		if routed > total {
			routed = total
		}
		gb := routed*BytesPerParam[INT4] + (total-routed)*mixedNonRoutedBytes
		return &gb
	}

	gb := total * BytesPerParam[p]
	return &gb
}

// ActiveMemoryGB returns the weight bytes read per decode step in GB, or nil
// when no footprint can be computed. Dense models and models without an
// active-parameter count fall back to the total footprint.
//
// Under the mixed INT4 scheme the non-routed parameters (total minus routed)
// are read on every step at BF16; the remainder of the active count is routed
// experts at INT4. The split base here is the active count, not the total.
func ActiveMemoryGB(m *catalog.Model, p Precision) *float64 {
	if m == nil {
		return nil
	}
	if !m.IsMoE() || m.ActiveParamsB == nil {
		return TotalMemoryGB(m, p)
	}
	active := *m.ActiveParamsB

	if usesMixedSplit(m, p) {
		nonRouted := *m.LearnableParamsB - *m.RoutedExpertParamsB
		if nonRouted < 0 {
			nonRouted = 0
		}
		if nonRouted > active {
			nonRouted = active
		}
		routedActive := active - nonRouted
		gb := routedActive*BytesPerParam[INT4] + nonRouted*mixedNonRoutedBytes
		return &gb
	}

	gb := active * BytesPerParam[p]
	return &gb
}
