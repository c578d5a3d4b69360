package catalog

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SpecFor", func() {
	It("should resolve a known GPU", func() {
		spec, ok := SpecFor("H100")
		Expect(ok).To(BeTrue())
		Expect(spec.MemoryGB).To(Equal(80.0))
		Expect(spec.Architecture).To(Equal("Hopper"))
	})

	It("should report unknown hardware", func() {
		_, ok := SpecFor("TPUv5")
		Expect(ok).To(BeFalse())
	})

	It("should be exact on names, not fuzzy", func() {
		_, ok := SpecFor("h100")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ThroughputSpec", func() {
	DescribeTable("FP8 KV cache support by generation",
		func(gpu string, want bool) {
			spec, ok := SpecFor(gpu)
			Expect(ok).To(BeTrue())
			Expect(spec.SupportsFP8KVCache()).To(Equal(want))
		},
		Entry("Hopper supports it", "H100", true),
		Entry("Blackwell supports it", "B200", true),
		Entry("Ada Lovelace supports it", "L40S", true),
		Entry("Ampere does not", "A100", false),
		Entry("Volta does not", "V100", false),
	)

	It("should carry complete records for every built-in GPU", func() {
		for name, spec := range DefaultThroughputSpecs {
			Expect(spec.GPUName).To(Equal(name))
			Expect(spec.MemoryGB).To(BeNumerically(">", 0), name)
			Expect(spec.FP16TFLOPS).To(BeNumerically(">", 0), name)
			Expect(spec.MemoryBandwidthTBps).To(BeNumerically(">", 0), name)
			Expect(spec.FP8Multiplier).To(Or(Equal(1.0), Equal(2.0)), name)
			Expect(spec.Architecture).NotTo(BeEmpty(), name)
		}
	})
})

var _ = Describe("Attention variants", func() {
	It("should size GQA caches per KV head", func() {
		a := GQAAttention{Layers: 92, NumKVHeads: 8, HeadDim: 128}
		Expect(a.KVBytesPerToken(2)).To(Equal(2.0 * 92 * 8 * 128 * 2))
	})

	It("should size MLA caches from the compressed latent", func() {
		a := MLAAttention{Layers: 61, KVLoraRank: 512, QKRopeHeadDim: 64}
		Expect(a.KVBytesPerToken(2)).To(Equal(61.0 * (512 + 64) * 2))
	})

	It("should make the MLA cache far smaller than a comparable GQA one", func() {
		gqa := GQAAttention{Layers: 61, NumKVHeads: 8, HeadDim: 128}
		mla := MLAAttention{Layers: 61, KVLoraRank: 512, QKRopeHeadDim: 64}
		Expect(mla.KVBytesPerToken(2)).To(BeNumerically("<", gqa.KVBytesPerToken(2)))
	})
})

var _ = Describe("Offering interconnect detection", func() {
	nvlink := func(s string) *string { return &s }

	DescribeTable("HasNVLink",
		func(descriptor *string, want bool) {
			o := Offering{GPUName: "H100", Interconnect: descriptor}
			Expect(o.HasNVLink()).To(Equal(want))
		},
		Entry("nil descriptor", nil, false),
		Entry("plain NVLink", nvlink("NVLink"), true),
		Entry("NVLink with bandwidth", nvlink("NVLink 900 GB/s"), true),
		Entry("lowercase", nvlink("nvlink4"), true),
		Entry("leading whitespace", nvlink("  NVLink"), true),
		Entry("PCIe", nvlink("PCIe 4.0"), false),
		Entry("infiniband is not nvlink", nvlink("InfiniBand"), false),
	)
})
