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

import "k8s.io/utils/ptr"

// ThroughputSpec is the static capability record of one GPU type. Values
// trace back to the TechPowerUp database, the Wikipedia NVLink tables, and
// vendor datasheets; B200/B300 figures are whole-package (dual-die).
type ThroughputSpec struct {
	// GPUName matches Offering.GPUName.
	GPUName string `json:"gpu_name"`

	// MemoryGB is the on-board memory in GB.
	MemoryGB float64 `json:"memory_size_gb"`

	// FP16TFLOPS is half-precision compute throughput in TFLOPS.
	FP16TFLOPS float64 `json:"fp16_tflops"`

	// MemoryBandwidthTBps is HBM/GDDR bandwidth in TB/s.
	MemoryBandwidthTBps float64 `json:"memory_bandwidth_tb_s"`

	// NVLinkBandwidthGBps is per-GPU NVLink bandwidth in GB/s, nil for
	// PCIe-only boards.
	NVLinkBandwidthGBps *float64 `json:"nvlink_bandwidth_gb_s,omitempty"`

	// FP8Multiplier is the compute speedup of FP8 over FP16 (1 or 2).
	FP8Multiplier float64 `json:"fp8_multiplier"`

	// Architecture is the GPU generation tag, e.g. "Hopper".
	Architecture string `json:"architecture"`
}

// HasNVLink reports whether the board exposes an NVLink connector.
func (s ThroughputSpec) HasNVLink() bool {
	return s.NVLinkBandwidthGBps != nil
}

// fp8KVCacheArchitectures lists GPU generations whose attention kernels
// support an FP8 KV cache.
var fp8KVCacheArchitectures = map[string]bool{
	"Ada Lovelace": true,
	"Hopper":       true,
	"Blackwell":    true,
}

// SupportsFP8KVCache reports whether the GPU generation can hold its KV cache
// in FP8.
func (s ThroughputSpec) SupportsFP8KVCache() bool {
	return fp8KVCacheArchitectures[s.Architecture]
}

// DefaultThroughputSpecs is the built-in capability table, one entry per GPU
// type that appears in pricing catalogs. Treated as frozen data; callers must
// not mutate it.
var DefaultThroughputSpecs = map[string]ThroughputSpec{
	"A10":            {GPUName: "A10", MemoryGB: 24, FP16TFLOPS: 31.2, MemoryBandwidthTBps: 0.600, FP8Multiplier: 1, Architecture: "Ampere"},
	"A10G":           {GPUName: "A10G", MemoryGB: 24, FP16TFLOPS: 31.5, MemoryBandwidthTBps: 0.600, FP8Multiplier: 1, Architecture: "Ampere"},
	"A100":           {GPUName: "A100", MemoryGB: 40, FP16TFLOPS: 78.0, MemoryBandwidthTBps: 1.555, NVLinkBandwidthGBps: ptr.To(600.0), FP8Multiplier: 1, Architecture: "Ampere"},
	"A100_80G":       {GPUName: "A100_80G", MemoryGB: 80, FP16TFLOPS: 78.0, MemoryBandwidthTBps: 2.039, NVLinkBandwidthGBps: ptr.To(600.0), FP8Multiplier: 1, Architecture: "Ampere"},
	"A40":            {GPUName: "A40", MemoryGB: 48, FP16TFLOPS: 37.4, MemoryBandwidthTBps: 0.696, FP8Multiplier: 1, Architecture: "Ampere"},
	"A4000":          {GPUName: "A4000", MemoryGB: 16, FP16TFLOPS: 19.2, MemoryBandwidthTBps: 0.448, FP8Multiplier: 1, Architecture: "Ampere"},
	"A4500":          {GPUName: "A4500", MemoryGB: 20, FP16TFLOPS: 23.7, MemoryBandwidthTBps: 0.640, FP8Multiplier: 1, Architecture: "Ampere"},
	"A5000":          {GPUName: "A5000", MemoryGB: 24, FP16TFLOPS: 27.8, MemoryBandwidthTBps: 0.768, NVLinkBandwidthGBps: ptr.To(112.5), FP8Multiplier: 1, Architecture: "Ampere"},
	"A6000":          {GPUName: "A6000", MemoryGB: 48, FP16TFLOPS: 38.7, MemoryBandwidthTBps: 0.768, NVLinkBandwidthGBps: ptr.To(112.5), FP8Multiplier: 1, Architecture: "Ampere"},
	"B200":           {GPUName: "B200", MemoryGB: 192, FP16TFLOPS: 497.0, MemoryBandwidthTBps: 8.000, NVLinkBandwidthGBps: ptr.To(1800.0), FP8Multiplier: 2, Architecture: "Blackwell"},
	"B300":           {GPUName: "B300", MemoryGB: 288, FP16TFLOPS: 558.0, MemoryBandwidthTBps: 8.000, NVLinkBandwidthGBps: ptr.To(1800.0), FP8Multiplier: 2, Architecture: "Blackwell"},
	"H100":           {GPUName: "H100", MemoryGB: 80, FP16TFLOPS: 267.6, MemoryBandwidthTBps: 3.350, NVLinkBandwidthGBps: ptr.To(900.0), FP8Multiplier: 2, Architecture: "Hopper"},
	"H100NVL":        {GPUName: "H100NVL", MemoryGB: 94, FP16TFLOPS: 267.6, MemoryBandwidthTBps: 3.900, NVLinkBandwidthGBps: ptr.To(900.0), FP8Multiplier: 2, Architecture: "Hopper"},
	"H200":           {GPUName: "H200", MemoryGB: 141, FP16TFLOPS: 267.6, MemoryBandwidthTBps: 4.800, NVLinkBandwidthGBps: ptr.To(900.0), FP8Multiplier: 2, Architecture: "Hopper"},
	"L4":             {GPUName: "L4", MemoryGB: 24, FP16TFLOPS: 30.3, MemoryBandwidthTBps: 0.300, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"L40":            {GPUName: "L40", MemoryGB: 48, FP16TFLOPS: 90.5, MemoryBandwidthTBps: 0.864, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"L40S":           {GPUName: "L40S", MemoryGB: 48, FP16TFLOPS: 91.6, MemoryBandwidthTBps: 0.864, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"RTX3090":        {GPUName: "RTX3090", MemoryGB: 24, FP16TFLOPS: 35.6, MemoryBandwidthTBps: 0.936, FP8Multiplier: 1, Architecture: "Ampere"},
	"RTX3090Ti":      {GPUName: "RTX3090Ti", MemoryGB: 24, FP16TFLOPS: 40.0, MemoryBandwidthTBps: 1.008, FP8Multiplier: 1, Architecture: "Ampere"},
	"RTX4000Ada":     {GPUName: "RTX4000Ada", MemoryGB: 20, FP16TFLOPS: 26.7, MemoryBandwidthTBps: 0.360, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"RTX4090":        {GPUName: "RTX4090", MemoryGB: 24, FP16TFLOPS: 82.6, MemoryBandwidthTBps: 1.008, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"RTX5000Ada":     {GPUName: "RTX5000Ada", MemoryGB: 32, FP16TFLOPS: 65.3, MemoryBandwidthTBps: 0.576, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"RTX5090":        {GPUName: "RTX5090", MemoryGB: 32, FP16TFLOPS: 104.8, MemoryBandwidthTBps: 1.792, FP8Multiplier: 2, Architecture: "Blackwell"},
	"RTX6000":        {GPUName: "RTX6000", MemoryGB: 24, FP16TFLOPS: 32.6, MemoryBandwidthTBps: 0.672, NVLinkBandwidthGBps: ptr.To(100.0), FP8Multiplier: 1, Architecture: "Turing"},
	"RTX6000Ada":     {GPUName: "RTX6000Ada", MemoryGB: 48, FP16TFLOPS: 91.1, MemoryBandwidthTBps: 0.960, FP8Multiplier: 1, Architecture: "Ada Lovelace"},
	"RTXPRO4500":     {GPUName: "RTXPRO4500", MemoryGB: 32, FP16TFLOPS: 63.1, MemoryBandwidthTBps: 0.896, FP8Multiplier: 2, Architecture: "Blackwell"},
	"RTXPRO6000":     {GPUName: "RTXPRO6000", MemoryGB: 96, FP16TFLOPS: 126.0, MemoryBandwidthTBps: 1.792, FP8Multiplier: 2, Architecture: "Blackwell"},
	"RTXPRO6000MaxQ": {GPUName: "RTXPRO6000MaxQ", MemoryGB: 96, FP16TFLOPS: 110.0, MemoryBandwidthTBps: 1.792, FP8Multiplier: 2, Architecture: "Blackwell"},
	"RTXPRO6000WK":   {GPUName: "RTXPRO6000WK", MemoryGB: 96, FP16TFLOPS: 126.0, MemoryBandwidthTBps: 1.792, FP8Multiplier: 2, Architecture: "Blackwell"},
	"V100":           {GPUName: "V100", MemoryGB: 16, FP16TFLOPS: 31.3, MemoryBandwidthTBps: 0.897, NVLinkBandwidthGBps: ptr.To(300.0), FP8Multiplier: 1, Architecture: "Volta"},
}

// SpecFor looks up the capability record for a GPU name. The second return
// is false for unknown hardware; callers propagate that as "cannot estimate"
// rather than guessing.
func SpecFor(gpuName string) (ThroughputSpec, bool) {
	spec, ok := DefaultThroughputSpecs[gpuName]
	return spec, ok
}
