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

// Attention is the attention-mechanism family of a model. Each variant
// carries only the dimensions its KV-cache formula needs.
type Attention interface {
	// KVBytesPerToken returns the key/value cache size in bytes for one
	// token, given the KV cache element width in bytes (1 for FP8, 2 for
	// FP16).
	KVBytesPerToken(kvCacheBytes float64) float64
}

// GQAAttention is grouped-query attention. Keys and values are stored per KV
// head per layer.
type GQAAttention struct {
	Layers     int
	NumKVHeads int
	HeadDim    int
}

// KVBytesPerToken implements Attention. The factor 2 covers the separate key
// and value tensors.
func (a GQAAttention) KVBytesPerToken(kvCacheBytes float64) float64 {
	return 2 * float64(a.Layers) * float64(a.NumKVHeads) * float64(a.HeadDim) * kvCacheBytes
}

// MLAAttention is multi-head latent attention. Keys and values share one
// compressed latent vector per layer plus a decoupled RoPE key.
type MLAAttention struct {
	Layers        int
	KVLoraRank    int
	QKRopeHeadDim int
}

// KVBytesPerToken implements Attention.
func (a MLAAttention) KVBytesPerToken(kvCacheBytes float64) float64 {
	return float64(a.Layers) * float64(a.KVLoraRank+a.QKRopeHeadDim) * kvCacheBytes
}
