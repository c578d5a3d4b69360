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

// Package datasource provides pluggable loading of the catalog data the
// engine consumes: enriched model metadata, GPU pricing, and benchmark
// snapshots.
package datasource

import (
	"context"

	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// Bundle is one consistent snapshot of all catalog inputs. The engine
// treats it as immutable once loaded.
type Bundle struct {
	// Models is the enriched model metadata (models.json).
	Models []catalog.Model

	// Offerings is the GPU pricing catalog (gpus.json).
	Offerings []catalog.Offering

	// Specs is a pinned GPU capability snapshot (gpu_specs.json), used to
	// validate the pricing catalog against the hardware the snapshot knows.
	// Nil means the built-in DefaultThroughputSpecs is the reference.
	Specs map[string]catalog.ThroughputSpec

	// Benchmarks and Sota are the benchmark snapshot
	// (benchmarks.json, sota_scores.json).
	Benchmarks []catalog.BenchmarkEntry
	Sota       []catalog.SotaEntry
}

// Source loads a catalog bundle from somewhere: a data directory, an object
// store, an HTTP endpoint. Implementations must be safe for repeated calls;
// each call returns a fresh snapshot.
type Source interface {
	// Name identifies the source in logs, e.g. "dir".
	Name() string

	// Load fetches and decodes all catalog inputs.
	Load(ctx context.Context) (*Bundle, error)
}
