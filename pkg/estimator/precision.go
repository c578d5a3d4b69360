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
	"strings"

	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// Precision is a normalized weight storage precision.
type Precision string

const (
	FP32 Precision = "fp32"
	FP16 Precision = "fp16"
	BF16 Precision = "bf16"
	FP8  Precision = "fp8"
	INT8 Precision = "int8"
	INT4 Precision = "int4"
)

// BytesPerParam maps each precision to its weight storage cost in bytes.
// INT4 carries 0.5625 bytes/param: 4 quantized bits plus group scale
// overhead. Frozen data; never mutated.
var BytesPerParam = map[Precision]float64{
	FP32: 4,
	FP16: 2,
	BF16: 2,
	FP8:  1,
	INT8: 1,
	INT4: 0.5625,
}

// mixedNonRoutedBytes is the storage cost of the non-routed (attention and
// shared) parameters of a mixed-precision INT4 model, kept at BF16.
const mixedNonRoutedBytes = 2.0

// ResolvePrecision normalizes a model's free-form declared precision to one
// of the supported tags. The match is case- and whitespace-insensitive and
// tolerates pipeline suffixes like "INT4-mixed". Unrecognized or missing
// values conservatively resolve to FP16.
func ResolvePrecision(m *catalog.Model) Precision {
	if m == nil || m.Precision == nil {
		return FP16
	}
	s := strings.ToLower(strings.TrimSpace(*m.Precision))
	switch {
	case strings.HasPrefix(s, "fp32"), strings.HasPrefix(s, "float32"):
		return FP32
	case strings.HasPrefix(s, "bf16"), strings.HasPrefix(s, "bfloat16"):
		return BF16
	case strings.HasPrefix(s, "fp16"), strings.HasPrefix(s, "float16"):
		return FP16
	case strings.HasPrefix(s, "fp8"):
		return FP8
	case strings.HasPrefix(s, "int8"):
		return INT8
	case strings.HasPrefix(s, "int4"):
		return INT4
	default:
		return FP16
	}
}
