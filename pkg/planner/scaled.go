package planner

import (
	"sort"

	"github.com/go-logr/logr"

	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// maxProjectedGPUCount caps how far a single-GPU rate is extrapolated.
// A business constant bounding projection confidence, not a topology limit.
const maxProjectedGPUCount = 8

// FindScaledSetups projects hardware options for targets no catalog entry can
// serve. For every GPU type with a single-GPU catalog entry (the canonical
// per-GPU rate) it scales the GPU count upward, capped at
// maxProjectedGPUCount, until the concurrency and throughput checks pass.
// Every returned option is flagged Projected. Ranking matches FindSetups.
func FindScaledSetups(logger logr.Logger, m *catalog.Model, offerings []catalog.Offering,
	target int, settings config.Settings, limit int) []SetupOption {

	if m == nil || limit <= 0 {
		return nil
	}

	// Cheapest single-GPU entry per GPU type, first appearance order.
	var order []string
	base := make(map[string]catalog.Offering)
	for _, o := range offerings {
		if o.GPUCount != 1 {
			continue
		}
		if prev, seen := base[o.GPUName]; !seen {
			base[o.GPUName] = o
			order = append(order, o.GPUName)
		} else if o.PricePerHour < prev.PricePerHour {
			base[o.GPUName] = o
		}
	}

	var options []SetupOption
	for _, name := range order {
		single := base[name]
		for count := 1; count <= maxProjectedGPUCount; count++ {
			scaled := single
			scaled.GPUCount = count
			scaled.TotalVRAMGB = single.VRAMGB * float64(count)
			scaled.PricePerHour = single.PricePerHour * float64(count)

			opt, ok := evaluate(logger, m, scaled, target, settings, true)
			if !ok {
				continue
			}
			options = append(options, opt)
			break
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
