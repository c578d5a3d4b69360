package catalog

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeModels", func() {
	It("should parse a normalized model record", func() {
		data := []byte(`[{
			"model_name": "DeepSeek R1",
			"learnable_params_b": 671,
			"active_params_b": 37,
			"architecture": "MoE",
			"precision": "FP8",
			"attention_type": "MLA",
			"num_hidden_layers": 61,
			"kv_lora_rank": 512,
			"qk_rope_head_dim": 64,
			"hf_model_id": "deepseek-ai/DeepSeek-R1"
		}]`)

		models, err := DecodeModels(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(models).To(HaveLen(1))

		m := models[0]
		Expect(m.Name).To(Equal("DeepSeek R1"))
		Expect(m.IsMoE()).To(BeTrue())
		Expect(m.LearnableParamsB).To(HaveValue(Equal(671.0)))
		Expect(m.ActiveParamsB).To(HaveValue(Equal(37.0)))
		Expect(m.Attention()).To(Equal(MLAAttention{Layers: 61, KVLoraRank: 512, QKRopeHeadDim: 64}))
	})

	It("should default a missing architecture to dense", func() {
		models, err := DecodeModels([]byte(`[{"model_name": "plain"}]`))
		Expect(err).NotTo(HaveOccurred())
		Expect(models[0].Architecture).To(Equal(ArchitectureDense))
	})

	It("should leave undetermined fields nil", func() {
		models, err := DecodeModels([]byte(`[{"model_name": "sparse-record"}]`))
		Expect(err).NotTo(HaveOccurred())
		Expect(models[0].LearnableParamsB).To(BeNil())
		Expect(models[0].Precision).To(BeNil())
		Expect(models[0].Attention()).To(BeNil())
	})

	It("should reject an MoE model with more active than learnable params", func() {
		data := []byte(`[{"model_name": "bad-moe", "architecture": "MoE", "learnable_params_b": 30, "active_params_b": 40}]`)
		_, err := DecodeModels(data)
		Expect(err).To(MatchError(ContainSubstring("exceeds learnable_params_b")))
	})

	It("should reject a record without a name", func() {
		_, err := DecodeModels([]byte(`[{"architecture": "Dense"}]`))
		Expect(err).To(MatchError(ContainSubstring("missing model_name")))
	})

	It("should reject malformed JSON", func() {
		_, err := DecodeModels([]byte(`{not json`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("DecodeOfferings", func() {
	It("should parse a pricing record", func() {
		data := []byte(`[{
			"gpu_name": "H100",
			"vram_gb": 80,
			"gpu_count": 8,
			"price_per_hour": 63.92,
			"currency": "USD",
			"provider": "runpod",
			"interconnect": "NVLink 900 GB/s"
		}]`)

		offerings, err := DecodeOfferings(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(offerings).To(HaveLen(1))

		o := offerings[0]
		Expect(o.GPUName).To(Equal("H100"))
		Expect(o.HasNVLink()).To(BeTrue())
		Expect(o.MonthlyCost()).To(BeNumerically("~", 63.92*720, 1e-9))
	})

	It("should fill total VRAM from per-GPU VRAM and count", func() {
		offerings, err := DecodeOfferings([]byte(`[{"gpu_name": "A100", "vram_gb": 40, "gpu_count": 4}]`))
		Expect(err).NotTo(HaveOccurred())
		Expect(offerings[0].TotalVRAMGB).To(Equal(160.0))
	})

	It("should keep an explicit total VRAM", func() {
		offerings, err := DecodeOfferings([]byte(`[{"gpu_name": "A100", "vram_gb": 40, "gpu_count": 4, "total_vram_gb": 320}]`))
		Expect(err).NotTo(HaveOccurred())
		Expect(offerings[0].TotalVRAMGB).To(Equal(320.0))
	})

	It("should reject a non-positive GPU count", func() {
		_, err := DecodeOfferings([]byte(`[{"gpu_name": "A100", "vram_gb": 40, "gpu_count": 0}]`))
		Expect(err).To(MatchError(ContainSubstring("gpu_count must be positive")))
	})

	It("should reject a record without a GPU name", func() {
		_, err := DecodeOfferings([]byte(`[{"vram_gb": 40, "gpu_count": 1}]`))
		Expect(err).To(MatchError(ContainSubstring("missing gpu_name")))
	})
})

var _ = Describe("DecodeThroughputSpecs", func() {
	It("should key the specs by GPU name", func() {
		data := []byte(`[
			{"gpu_name": "H100", "memory_size_gb": 80, "fp16_tflops": 267.6, "memory_bandwidth_tb_s": 3.35, "nvlink_bandwidth_gb_s": 900, "fp8_multiplier": 2, "architecture": "Hopper"},
			{"gpu_name": "L4", "memory_size_gb": 24, "fp16_tflops": 30.3, "memory_bandwidth_tb_s": 0.3, "fp8_multiplier": 1, "architecture": "Ada Lovelace"}
		]`)

		specs, err := DecodeThroughputSpecs(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(specs).To(HaveLen(2))
		Expect(specs["H100"].HasNVLink()).To(BeTrue())
		Expect(specs["L4"].HasNVLink()).To(BeFalse())
	})

	It("should reject a spec without a GPU name", func() {
		_, err := DecodeThroughputSpecs([]byte(`[{"memory_size_gb": 80}]`))
		Expect(err).To(MatchError(ContainSubstring("missing gpu_name")))
	})
})

var _ = Describe("DecodeBenchmarks", func() {
	It("should parse a benchmark snapshot", func() {
		data := []byte(`[
			{"model_name": "a", "benchmark_name": "overall", "score": 61.2, "rank": 1},
			{"model_name": "b", "benchmark_name": "overall", "score": 55.0, "rank": 2}
		]`)

		entries, err := DecodeBenchmarks(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Score).To(Equal(61.2))
	})
})

var _ = Describe("DecodeSotaScores", func() {
	It("should parse SOTA reference scores", func() {
		data := []byte(`[{"benchmark_name": "overall", "sota_model_name": "frontier", "sota_score": 71.4}]`)

		entries, err := DecodeSotaScores(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].Score).To(Equal(71.4))
	})
})
