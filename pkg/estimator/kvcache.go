package estimator

import (
	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// KV cache element widths in bytes.
const (
	KVCacheBytesFP8  = 1.0
	KVCacheBytesFP16 = 2.0
)

const bytesPerGiB = 1024 * 1024 * 1024

// KVBytesPerTokenGB returns the KV cache cost of one token in GB for the
// model's attention family. Returns 0 when the family is unrecognized or a
// required dimension is missing.
func KVBytesPerTokenGB(m *catalog.Model, kvCacheBytes float64) float64 {
	if m == nil {
		return 0
	}
	att := m.Attention()
	if att == nil {
		return 0
	}
	return att.KVBytesPerToken(kvCacheBytes) / bytesPerGiB
}

// KVBytesPerRequestGB returns the KV cache cost of one full request (prompt
// plus generated tokens) in GB.
func KVBytesPerRequestGB(m *catalog.Model, inputTokens, outputTokens int, kvCacheBytes float64) float64 {
	if inputTokens < 0 {
		inputTokens = 0
	}
	if outputTokens < 0 {
		outputTokens = 0
	}
	return float64(inputTokens+outputTokens) * KVBytesPerTokenGB(m, kvCacheBytes)
}

// ResolveKVCacheBytes picks the KV cache element width for a GPU under the
// configured precision mode. Explicit fp8/fp16 settings always win; auto
// chooses FP8 only on generations whose kernels support it, and falls back to
// FP16 for unknown hardware.
func ResolveKVCacheBytes(mode string, gpuName string) float64 {
	switch mode {
	case config.KVCacheFP8:
		return KVCacheBytesFP8
	case config.KVCacheFP16:
		return KVCacheBytesFP16
	}
	spec, ok := catalog.SpecFor(gpuName)
	if ok && spec.SupportsFP8KVCache() {
		return KVCacheBytesFP8
	}
	return KVCacheBytesFP16
}
