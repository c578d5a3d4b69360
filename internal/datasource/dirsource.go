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

package datasource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/gpu-cost-explorer/engine/internal/logging"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// Canonical file names inside a data directory.
const (
	ModelsFile     = "models.json"
	OfferingsFile  = "gpus.json"
	SpecsFile      = "gpu_specs.json"
	BenchmarksFile = "benchmarks.json"
	SotaFile       = "sota_scores.json"
)

// DirSource loads a catalog bundle from a directory of JSON files produced
// by the data pipeline. Models and offerings are required; the spec override
// and benchmark files are optional.
type DirSource struct {
	dir    string
	logger logr.Logger
}

// NewDirSource returns a source reading from dir.
func NewDirSource(dir string, logger logr.Logger) *DirSource {
	return &DirSource{dir: dir, logger: logger}
}

// Name implements Source.
func (s *DirSource) Name() string { return "dir" }

// Load implements Source.
func (s *DirSource) Load(ctx context.Context) (*Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundle := &Bundle{}

	data, err := os.ReadFile(filepath.Join(s.dir, ModelsFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ModelsFile, err)
	}
	if bundle.Models, err = catalog.DecodeModels(data); err != nil {
		return nil, fmt.Errorf("%s: %w", ModelsFile, err)
	}

	data, err = os.ReadFile(filepath.Join(s.dir, OfferingsFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", OfferingsFile, err)
	}
	if bundle.Offerings, err = catalog.DecodeOfferings(data); err != nil {
		return nil, fmt.Errorf("%s: %w", OfferingsFile, err)
	}

	if data, ok, err := s.readOptional(SpecsFile); err != nil {
		return nil, err
	} else if ok {
		if bundle.Specs, err = catalog.DecodeThroughputSpecs(data); err != nil {
			return nil, fmt.Errorf("%s: %w", SpecsFile, err)
		}
	}

	if data, ok, err := s.readOptional(BenchmarksFile); err != nil {
		return nil, err
	} else if ok {
		if bundle.Benchmarks, err = catalog.DecodeBenchmarks(data); err != nil {
			return nil, fmt.Errorf("%s: %w", BenchmarksFile, err)
		}
	}

	if data, ok, err := s.readOptional(SotaFile); err != nil {
		return nil, err
	} else if ok {
		if bundle.Sota, err = catalog.DecodeSotaScores(data); err != nil {
			return nil, fmt.Errorf("%s: %w", SotaFile, err)
		}
	}

	s.warnUnknownHardware(bundle)

	s.logger.V(logging.DEBUG).Info("loaded catalog bundle",
		"dir", s.dir,
		"models", len(bundle.Models),
		"offerings", len(bundle.Offerings),
		"benchmarks", len(bundle.Benchmarks))

	return bundle, nil
}

// warnUnknownHardware flags offerings whose GPU has no capability record.
// The engine later rejects those offerings one by one; surfacing them at
// load time makes a stale pricing snapshot visible in one log line per type.
func (s *DirSource) warnUnknownHardware(bundle *Bundle) {
	known := func(name string) bool {
		if bundle.Specs != nil {
			_, ok := bundle.Specs[name]
			return ok
		}
		_, ok := catalog.SpecFor(name)
		return ok
	}

	seen := map[string]bool{}
	for _, o := range bundle.Offerings {
		if seen[o.GPUName] || known(o.GPUName) {
			continue
		}
		seen[o.GPUName] = true
		s.logger.Info("offering references GPU without a capability record",
			"gpu", o.GPUName)
	}
}

// readOptional reads a file that may legitimately be absent.
func (s *DirSource) readOptional(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.V(logging.DEBUG).Info("optional catalog file absent, skipping",
			"dir", s.dir,
			"file", name)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, true, nil
}
