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

// DecodeTokensPerSecond estimates steady-state decode throughput for a single
// generation stream, in tokens/second. Returns nil when the GPU is unknown or
// the model's active memory cannot be resolved.
//
// Decode is modeled as memory-bandwidth-bound: every generated token reads
// the active weights once. Only the tensor-parallel GPUs contribute
// bandwidth; pipeline-stage GPUs hold different layers and add none per
// stream.
func DecodeTokensPerSecond(m *catalog.Model, p Precision, gpuName string, gpuCount int, interconnect *string) *float64 {
	spec, ok := catalog.SpecFor(gpuName)
	if !ok {
		return nil
	}
	active := ActiveMemoryGB(m, p)
	if active == nil || *active <= 0 {
		return nil
	}

	topo := TopologyFor(gpuCount)
	effBandwidthBytes := spec.MemoryBandwidthTBps * 1e12 *
		float64(topo.TP) * TPEfficiency(topo.TP, interconnect)

	tokens := effBandwidthBytes / (*active * 1e9)
	return &tokens
}

// PrefillTokensPerSecond estimates prompt-processing throughput in
// tokens/second. Returns nil when the GPU is unknown or no parameter count is
// available.
//
// Prefill is compute-bound: each prompt token costs roughly two FLOPs per
// active parameter. FP8 and INT8 weights run at the generation's FP8
// multiplier over the FP16 rate.
func PrefillTokensPerSecond(m *catalog.Model, p Precision, gpuName string, gpuCount int, interconnect *string) *float64 {
	spec, ok := catalog.SpecFor(gpuName)
	if !ok {
		return nil
	}
	params := activeParamsB(m)
	if params == nil || *params <= 0 {
		return nil
	}

	topo := TopologyFor(gpuCount)
	tflops := spec.FP16TFLOPS
	switch p {
	case FP8, INT8, INT4:
		tflops *= spec.FP8Multiplier
	}
	effFlops := tflops * 1e12 * float64(topo.TP) * TPEfficiency(topo.TP, interconnect)

	tokens := effFlops / (2 * *params * 1e9)
	return &tokens
}

// activeParamsB returns the per-step parameter count in billions, falling
// back to the total count for dense models.
func activeParamsB(m *catalog.Model) *float64 {
	if m == nil {
		return nil
	}
	if m.IsMoE() && m.ActiveParamsB != nil {
		return m.ActiveParamsB
	}
	return m.LearnableParamsB
}
