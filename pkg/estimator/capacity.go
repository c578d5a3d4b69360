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
	"math"

	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// Empirical serving constants. Fixed values calibrated against production
// vLLM deployments; changing them changes every capacity figure the engine
// produces.
const (
	// WeightOverheadFactor inflates the weight footprint to cover
	// activations and runtime context.
	WeightOverheadFactor = 1.15

	// KVSafetyMargin discounts raw KV concurrency for allocator
	// fragmentation.
	KVSafetyMargin = 0.75
)

// MaxConcurrentRequests computes how many simultaneous request streams fit in
// the VRAM left after loading the model's weights (with overhead). Returns 0
// when the weights alone exceed capacity, when the parameter count is
// unknown, or when the per-request KV cost cannot be computed.
//
// cacheUtilization scales the per-request KV cost: a high prefix-cache hit
// rate means less resident KV per request and therefore more streams.
func MaxConcurrentRequests(m *catalog.Model, p Precision, totalVRAMGB float64,
	inputTokens, outputTokens int, kvCacheBytes, cacheUtilization float64) int {

	total := TotalMemoryGB(m, p)
	if total == nil {
		return 0
	}
	kvBudget := totalVRAMGB - *total*WeightOverheadFactor
	if kvBudget <= 0 {
		return 0
	}

	perRequest := KVBytesPerRequestGB(m, inputTokens, outputTokens, kvCacheBytes) * cacheUtilization
	if perRequest <= 0 {
		return 0
	}

	return int(math.Floor(kvBudget / perRequest))
}

// ServingCapacity applies the KV safety margin to a raw concurrency solve,
// yielding the stream count the configuration can actually be expected to
// hold.
func ServingCapacity(rawConcurrency int) int {
	if rawConcurrency <= 0 {
		return 0
	}
	return int(math.Floor(float64(rawConcurrency) * KVSafetyMargin))
}

// UsageRegime describes how a team of people drives the serving workload.
type UsageRegime struct {
	// RequestsPerUserPerHour is the request rate of one active user.
	RequestsPerUserPerHour float64

	// UtilizationTarget is the fraction of hard capacity considered
	// comfortable for everyday use, in (0,1].
	UtilizationTarget float64
}

// DefaultUsageRegime models an engineering team using coding assistants:
// ten requests per user-hour, sized to 70% of hard capacity.
func DefaultUsageRegime() UsageRegime {
	return UsageRegime{
		RequestsPerUserPerHour: 10,
		UtilizationTarget:      0.7,
	}
}

// TeamCapacityResult sizes an offering in people rather than streams.
type TeamCapacityResult struct {
	// ComfortableUsers is the team size at the utilization target.
	ComfortableUsers int

	// HardLimitUsers is the team size at 100% utilization.
	HardLimitUsers int

	// CostPerUserMonthly is monthly cost divided by comfortable users;
	// +Inf when the configuration cannot serve anyone.
	CostPerUserMonthly float64
}

// TeamCapacity derives team sizes and cost-per-user for one offering under a
// usage regime. Whenever an upstream quantity is unavailable (unknown GPU,
// missing model data, zero capacity) the result is the zero/+Inf sentinel.
func TeamCapacity(m *catalog.Model, offering *catalog.Offering, settings config.Settings, regime UsageRegime) TeamCapacityResult {
	unservable := TeamCapacityResult{CostPerUserMonthly: math.Inf(1)}
	if m == nil || offering == nil {
		return unservable
	}

	p := ResolvePrecision(m)
	kvBytes := ResolveKVCacheBytes(settings.KVCachePrecision, offering.GPUName)
	raw := MaxConcurrentRequests(m, p, offering.TotalVRAMGB,
		settings.AvgInputTokens, settings.AvgOutputTokens, kvBytes, settings.CacheUtilization())
	capacity := ServingCapacity(raw)
	if capacity <= 0 {
		return unservable
	}

	tokPerSec := DecodeTokensPerSecond(m, p, offering.GPUName, offering.GPUCount, offering.Interconnect)
	if tokPerSec == nil || *tokPerSec <= 0 || settings.AvgOutputTokens <= 0 {
		return unservable
	}

	// One user's request occupies a stream for outputTokens/tokPerSec
	// seconds, so each user holds requestSeconds*rate/3600 streams on
	// average.
	requestSeconds := float64(settings.AvgOutputTokens) / *tokPerSec
	streamsPerUser := requestSeconds * regime.RequestsPerUserPerHour / 3600
	if streamsPerUser <= 0 {
		return unservable
	}

	hard := int(math.Floor(float64(capacity) / streamsPerUser))
	comfortable := int(math.Floor(float64(hard) * regime.UtilizationTarget))
	if comfortable <= 0 {
		return TeamCapacityResult{
			HardLimitUsers:     hard,
			CostPerUserMonthly: math.Inf(1),
		}
	}

	return TeamCapacityResult{
		ComfortableUsers:   comfortable,
		HardLimitUsers:     hard,
		CostPerUserMonthly: offering.MonthlyCost() / float64(comfortable),
	}
}
