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

// Architecture describes how a model's parameters are activated per token.
type Architecture string

const (
	// ArchitectureDense means all parameters are read on every decode step.
	ArchitectureDense Architecture = "Dense"

	// ArchitectureMoE means only the routed active experts are read per token.
	ArchitectureMoE Architecture = "MoE"
)

// Model is the static metadata of a served LLM, produced by the enrichment
// pipeline and consumed read-only by the engine. Nullable fields are pointers;
// a nil value means the pipeline could not determine it and downstream
// estimates that need it come back nil rather than guessed.
type Model struct {
	// Name is the display name used on the benchmark leaderboard.
	Name string `json:"model_name"`

	// PublishedParamsB is the safetensors element count in billions.
	// Can diverge from LearnableParamsB for packed formats like INT4.
	PublishedParamsB *float64 `json:"published_param_count_b,omitempty"`

	// LearnableParamsB is the true logical parameter count in billions.
	LearnableParamsB *float64 `json:"learnable_params_b,omitempty"`

	// ActiveParamsB is the parameter count read per decode step, in billions.
	// Meaningful for MoE models; nil for dense ones.
	ActiveParamsB *float64 `json:"active_params_b,omitempty"`

	// Architecture is Dense or MoE.
	Architecture Architecture `json:"architecture,omitempty"`

	// ContextLength is the maximum context window in tokens.
	ContextLength *int `json:"context_length,omitempty"`

	// Precision is the published storage precision, e.g. "FP8", "BF16",
	// "INT4-mixed". Free-form; resolved by the estimator.
	Precision *string `json:"precision,omitempty"`

	// RoutedExpertParamsB is the routed expert parameter count in billions,
	// the INT4-quantized bulk of mixed-precision models.
	RoutedExpertParamsB *float64 `json:"routed_expert_params_b,omitempty"`

	// AttentionType is "MLA" or "GQA"; anything else is treated as unknown.
	AttentionType *string `json:"attention_type,omitempty"`

	// NumHiddenLayers is the transformer layer count.
	NumHiddenLayers *int `json:"num_hidden_layers,omitempty"`

	// NumKVHeads is the number of key/value heads (GQA only).
	NumKVHeads *int `json:"num_kv_heads,omitempty"`

	// HeadDim is the attention head dimension (GQA only).
	HeadDim *int `json:"head_dim,omitempty"`

	// KVLoraRank is the compressed KV dimension (MLA only).
	KVLoraRank *int `json:"kv_lora_rank,omitempty"`

	// QKRopeHeadDim is the decoupled RoPE head dimension (MLA only).
	QKRopeHeadDim *int `json:"qk_rope_head_dim,omitempty"`

	// HFModelID is the HuggingFace repo ID, kept for linking only.
	HFModelID string `json:"hf_model_id,omitempty"`
}

// IsMoE reports whether the model is a mixture-of-experts architecture.
func (m *Model) IsMoE() bool {
	return m.Architecture == ArchitectureMoE
}

// Attention builds the attention-family variant for this model, or nil when
// the family is unknown or any dimension its formula needs is missing.
func (m *Model) Attention() Attention {
	if m.AttentionType == nil || m.NumHiddenLayers == nil {
		return nil
	}
	switch *m.AttentionType {
	case "GQA":
		if m.NumKVHeads == nil || m.HeadDim == nil {
			return nil
		}
		return GQAAttention{
			Layers:     *m.NumHiddenLayers,
			NumKVHeads: *m.NumKVHeads,
			HeadDim:    *m.HeadDim,
		}
	case "MLA":
		if m.KVLoraRank == nil || m.QKRopeHeadDim == nil {
			return nil
		}
		return MLAAttention{
			Layers:        *m.NumHiddenLayers,
			KVLoraRank:    *m.KVLoraRank,
			QKRopeHeadDim: *m.QKRopeHeadDim,
		}
	default:
		return nil
	}
}
