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
	"github.com/go-logr/logr"

	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/internal/logging"
	"github.com/gpu-cost-explorer/engine/internal/metrics"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// ConcurrencyTiers are the representative simultaneous-stream counts every
// model is evaluated at. Points, not ranges.
var ConcurrencyTiers = []int{5, 20, 80, 150}

// MatrixCell is one (model, concurrency tier) evaluation.
type MatrixCell struct {
	// ModelName is the benchmark display name of the model.
	ModelName string

	// Tier is the target concurrent stream count.
	Tier int

	// Setups are the ranked hardware options for this cell, cheapest
	// first. Empty when ExceedsCapacity.
	Setups []SetupOption

	// Score is the model's benchmark score, nil when it has no entry.
	Score *float64

	// PercentOfSota is Score over the category's state-of-the-art score,
	// 0 when no reference score exists.
	PercentOfSota float64

	// ExceedsCapacity is set when no hardware option, real or projected,
	// satisfies the tier.
	ExceedsCapacity bool
}

// MatrixInput bundles the catalog data the assembler works from.
type MatrixInput struct {
	// Models is the enriched model metadata.
	Models []catalog.Model

	// Offerings is the pricing catalog.
	Offerings []catalog.Offering

	// Benchmarks and Sota are the current benchmark snapshot.
	Benchmarks []catalog.BenchmarkEntry
	Sota       []catalog.SotaEntry

	// Benchmark is the category models are ranked by, e.g. "overall".
	Benchmark string

	// Settings holds global defaults and per-model overrides.
	Settings config.SettingsData
}

// AssembleMatrix builds the model × tier recommendation grid. Rows follow
// the benchmark ranking of the chosen category; models without enriched
// metadata are skipped. Each cell is computed independently: real catalog
// matches first, then — in always-scale mode — the projection fallback.
//
// Assembly is deterministic and stateless: calling it twice with identical
// inputs produces identical grids.
func AssembleMatrix(logger logr.Logger, in MatrixInput) [][]MatrixCell {
	byName := make(map[string]*catalog.Model, len(in.Models))
	for i := range in.Models {
		byName[in.Models[i].Name] = &in.Models[i]
	}
	sota := catalog.SotaFor(in.Sota, in.Benchmark)

	var grid [][]MatrixCell
	for _, name := range catalog.RankedModels(in.Benchmarks, in.Benchmark) {
		m, ok := byName[name]
		if !ok {
			logger.V(logging.DEBUG).Info("no enriched metadata for benchmark model, skipping",
				"model", name,
				"benchmark", in.Benchmark)
			continue
		}
		settings := in.Settings.ForModel(name)
		score := catalog.ScoreFor(in.Benchmarks, name, in.Benchmark)

		row := make([]MatrixCell, 0, len(ConcurrencyTiers))
		for _, tier := range ConcurrencyTiers {
			row = append(row, assembleCell(logger, m, tier, score, sota, in.Offerings, settings))
		}
		grid = append(grid, row)
	}
	return grid
}

func assembleCell(logger logr.Logger, m *catalog.Model, tier int,
	score, sota *float64, offerings []catalog.Offering, settings config.Settings) MatrixCell {

	metrics.RecordMatrixCell()

	cell := MatrixCell{
		ModelName: m.Name,
		Tier:      tier,
		Score:     score,
	}
	if score != nil && sota != nil && *sota > 0 {
		cell.PercentOfSota = *score / *sota
	}

	cell.Setups = FindSetups(logger, m, offerings, tier, settings, settings.SetupLimit)
	if len(cell.Setups) == 0 && settings.ProjectionMode != config.ProjectionBounded {
		cell.Setups = FindScaledSetups(logger, m, offerings, tier, settings, settings.SetupLimit)
	}
	cell.ExceedsCapacity = len(cell.Setups) == 0

	return cell
}
