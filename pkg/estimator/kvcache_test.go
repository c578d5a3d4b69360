package estimator

import (
	"math"
	"testing"

	"k8s.io/utils/ptr"

	"github.com/gpu-cost-explorer/engine/internal/config"
	"github.com/gpu-cost-explorer/engine/pkg/catalog"
)

// gqaModel matches the GQA dimensions of a large dense model: 92 layers,
// 8 KV heads, 128 head dim.
func gqaModel() *catalog.Model {
	return &catalog.Model{
		Name:             "gqa-dense",
		LearnableParamsB: ptr.To(352.8),
		Architecture:     catalog.ArchitectureDense,
		AttentionType:    ptr.To("GQA"),
		NumHiddenLayers:  ptr.To(92),
		NumKVHeads:       ptr.To(8),
		HeadDim:          ptr.To(128),
	}
}

// mlaModel matches DeepSeek-style MLA dimensions.
func mlaModel() *catalog.Model {
	return &catalog.Model{
		Name:             "mla-moe",
		LearnableParamsB: ptr.To(671.0),
		ActiveParamsB:    ptr.To(37.0),
		Architecture:     catalog.ArchitectureMoE,
		AttentionType:    ptr.To("MLA"),
		NumHiddenLayers:  ptr.To(61),
		KVLoraRank:       ptr.To(512),
		QKRopeHeadDim:    ptr.To(64),
	}
}

func TestKVBytesPerTokenGB(t *testing.T) {
	tests := []struct {
		name         string
		model        *catalog.Model
		kvCacheBytes float64
		wantBytes    float64
	}{
		{
			name:         "GQA fp16",
			model:        gqaModel(),
			kvCacheBytes: 2,
			wantBytes:    2 * 92 * 8 * 128 * 2,
		},
		{
			name:         "MLA fp16",
			model:        mlaModel(),
			kvCacheBytes: 2,
			wantBytes:    61 * (512 + 64) * 2,
		},
		{
			name: "unknown attention family yields zero",
			model: &catalog.Model{
				Name:            "mha",
				AttentionType:   ptr.To("MHA"),
				NumHiddenLayers: ptr.To(32),
			},
			kvCacheBytes: 2,
			wantBytes:    0,
		},
		{
			name: "missing GQA dims yields zero",
			model: &catalog.Model{
				Name:            "partial",
				AttentionType:   ptr.To("GQA"),
				NumHiddenLayers: ptr.To(32),
			},
			kvCacheBytes: 2,
			wantBytes:    0,
		},
		{
			name:         "nil model yields zero",
			model:        nil,
			kvCacheBytes: 2,
			wantBytes:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KVBytesPerTokenGB(tt.model, tt.kvCacheBytes)
			want := tt.wantBytes / bytesPerGiB
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("KVBytesPerTokenGB() = %v, want %v", got, want)
			}
		})
	}
}

// FP8 KV cache must cost exactly half of FP16 for both attention families.
func TestKVBytesFP8HalvesFP16(t *testing.T) {
	for _, m := range []*catalog.Model{gqaModel(), mlaModel()} {
		fp16 := KVBytesPerTokenGB(m, KVCacheBytesFP16)
		fp8 := KVBytesPerTokenGB(m, KVCacheBytesFP8)
		if fp16 == 0 {
			t.Fatalf("%s: expected nonzero KV cost", m.Name)
		}
		if math.Abs(fp8*2-fp16) > 1e-15 {
			t.Errorf("%s: fp8 %v is not half of fp16 %v", m.Name, fp8, fp16)
		}
	}
}

func TestKVBytesPerRequestGB(t *testing.T) {
	m := gqaModel()
	perToken := KVBytesPerTokenGB(m, 2)
	got := KVBytesPerRequestGB(m, 1000, 500, 2)
	if math.Abs(got-1500*perToken) > 1e-12 {
		t.Errorf("KVBytesPerRequestGB() = %v, want %v", got, 1500*perToken)
	}

	if got := KVBytesPerRequestGB(m, -10, -5, 2); got != 0 {
		t.Errorf("negative token counts should clamp to zero, got %v", got)
	}
}

func TestResolveKVCacheBytes(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		gpuName string
		want    float64
	}{
		{name: "explicit fp8 wins on old hardware", mode: config.KVCacheFP8, gpuName: "A100", want: 1},
		{name: "explicit fp16 wins on hopper", mode: config.KVCacheFP16, gpuName: "H100", want: 2},
		{name: "auto picks fp8 on hopper", mode: config.KVCacheAuto, gpuName: "H100", want: 1},
		{name: "auto picks fp8 on ada", mode: config.KVCacheAuto, gpuName: "L40S", want: 1},
		{name: "auto picks fp8 on blackwell", mode: config.KVCacheAuto, gpuName: "B200", want: 1},
		{name: "auto picks fp16 on ampere", mode: config.KVCacheAuto, gpuName: "A100_80G", want: 2},
		{name: "auto picks fp16 on unknown gpu", mode: config.KVCacheAuto, gpuName: "TPUv5", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveKVCacheBytes(tt.mode, tt.gpuName); got != tt.want {
				t.Errorf("ResolveKVCacheBytes(%q, %q) = %v, want %v", tt.mode, tt.gpuName, got, tt.want)
			}
		})
	}
}
