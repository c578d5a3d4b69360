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

package planner

import (
	"sort"

	"github.com/go-logr/logr"

	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/internal/logging"
	"github.com/gpu-cost-explorer/engine/internal/metrics"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
	"github.com/gpu-cost-explorer/engine/pkg/estimator"
)

// SetupOption is one hardware configuration that can serve a model at a
// target concurrency, with its derived cost and capacity figures.
type SetupOption struct {
	// Offering is the priced configuration this option is based on. For
	// projected options the count, VRAM and price are scaled from a
	// single-GPU catalog entry.
	Offering catalog.Offering

	// MonthlyCost is the offering price over a 720-hour month.
	MonthlyCost float64

	// MaxConcurrentStreams is the serving capacity after the KV safety
	// margin.
	MaxConcurrentStreams int

	// TokensPerSecondPerStream is the effective decode throughput of one
	// stream, pipeline bubble included.
	TokensPerSecondPerStream float64

	// CostPerStreamMonthly is MonthlyCost spread over the target
	// concurrency the option was selected for.
	CostPerStreamMonthly float64

	// Utilization is target concurrency over serving capacity.
	Utilization float64

	// Projected marks options extrapolated beyond the pricing catalog.
	Projected bool
}

// evaluate runs the estimator chain for one offering and reports whether it
// satisfies the target, recording rejection metrics along the way.
func evaluate(logger logr.Logger, m *catalog.Model, offering catalog.Offering,
	target int, settings config.Settings, projected bool) (SetupOption, bool) {

	metrics.RecordSetupEvaluated(m.Name)

	if _, ok := catalog.SpecFor(offering.GPUName); !ok {
		metrics.RecordSetupRejected(m.Name, metrics.ReasonUnknownGPU)
		return SetupOption{}, false
	}

	p := estimator.ResolvePrecision(m)
	total := estimator.TotalMemoryGB(m, p)
	if total == nil || *total*estimator.WeightOverheadFactor > offering.TotalVRAMGB {
		metrics.RecordSetupRejected(m.Name, metrics.ReasonInsufficientVRAM)
		return SetupOption{}, false
	}

	kvBytes := estimator.ResolveKVCacheBytes(settings.KVCachePrecision, offering.GPUName)
	raw := estimator.MaxConcurrentRequests(m, p, offering.TotalVRAMGB,
		settings.AvgInputTokens, settings.AvgOutputTokens, kvBytes, settings.CacheUtilization())
	capacity := estimator.ServingCapacity(raw)
	if capacity < target || capacity <= 0 {
		logger.V(logging.TRACE).Info("offering below target concurrency",
			"model", m.Name,
			"gpu", offering.GPUName,
			"gpuCount", offering.GPUCount,
			"capacity", capacity,
			"target", target)
		metrics.RecordSetupRejected(m.Name, metrics.ReasonLowConcurrency)
		return SetupOption{}, false
	}

	decode := estimator.DecodeTokensPerSecond(m, p, offering.GPUName, offering.GPUCount, offering.Interconnect)
	if decode == nil {
		metrics.RecordSetupRejected(m.Name, metrics.ReasonUnknownGPU)
		return SetupOption{}, false
	}
	topo := estimator.TopologyFor(offering.GPUCount)
	tokPerStream := *decode * estimator.PPBubbleEfficiency(topo.PP, target)
	if tokPerStream < settings.MinTokPerStream {
		logger.V(logging.TRACE).Info("offering below throughput floor",
			"model", m.Name,
			"gpu", offering.GPUName,
			"gpuCount", offering.GPUCount,
			"tokPerStream", tokPerStream,
			"floor", settings.MinTokPerStream)
		metrics.RecordSetupRejected(m.Name, metrics.ReasonLowThroughput)
		return SetupOption{}, false
	}

	monthly := offering.MonthlyCost()
	costPerStream := monthly
	if target > 0 {
		costPerStream = monthly / float64(target)
	}

	return SetupOption{
		Offering:                 offering,
		MonthlyCost:              monthly,
		MaxConcurrentStreams:     capacity,
		TokensPerSecondPerStream: tokPerStream,
		CostPerStreamMonthly:     costPerStream,
		Utilization:              float64(target) / float64(capacity),
		Projected:                projected,
	}, true
}

// dedupeCheapest keeps the cheapest offering per (GPU name, GPU count) pair,
// preserving first-appearance order for stable ranking.
func dedupeCheapest(offerings []catalog.Offering) []catalog.Offering {
	type key struct {
		name  string
		count int
	}
	index := make(map[key]int)
	out := make([]catalog.Offering, 0, len(offerings))
	for _, o := range offerings {
		k := key{o.GPUName, o.GPUCount}
		if i, seen := index[k]; seen {
			if o.PricePerHour < out[i].PricePerHour {
				out[i] = o
			}
			continue
		}
		index[k] = len(out)
		out = append(out, o)
	}
	return out
}

// FindSetups returns up to limit hardware options that can serve the model at
// the target concurrency and throughput floor, ranked by ascending monthly
// cost. Ties keep catalog order. An empty result means no catalog entry
// suffices; callers may fall back to FindScaledSetups.
func FindSetups(logger logr.Logger, m *catalog.Model, offerings []catalog.Offering,
	target int, settings config.Settings, limit int) []SetupOption {

	if m == nil || limit <= 0 {
		return nil
	}

	var options []SetupOption
	for _, o := range dedupeCheapest(offerings) {
		if opt, ok := evaluate(logger, m, o, target, settings, false); ok {
			options = append(options, opt)
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].MonthlyCost < options[j].MonthlyCost
	})
	if len(options) > limit {
		options = options[:limit]
	}
	return options
}
