package catalog

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Benchmark lookups", func() {
	entries := []BenchmarkEntry{
		{ModelName: "alpha", Benchmark: "overall", Score: 61.2, Rank: 2},
		{ModelName: "beta", Benchmark: "overall", Score: 64.0, Rank: 1},
		{ModelName: "alpha", Benchmark: "coding", Score: 70.1, Rank: 1},
		{ModelName: "gamma", Benchmark: "overall", Score: 50.0},
		{ModelName: "delta", Benchmark: "overall", Score: 58.0},
	}
	sota := []SotaEntry{
		{Benchmark: "overall", ModelName: "frontier", Score: 71.4},
	}

	Describe("ScoreFor", func() {
		It("should find the score in the requested category", func() {
			Expect(ScoreFor(entries, "alpha", "overall")).To(HaveValue(Equal(61.2)))
			Expect(ScoreFor(entries, "alpha", "coding")).To(HaveValue(Equal(70.1)))
		})

		It("should return nil for a model without an entry", func() {
			Expect(ScoreFor(entries, "beta", "coding")).To(BeNil())
			Expect(ScoreFor(entries, "missing", "overall")).To(BeNil())
		})
	})

	Describe("SotaFor", func() {
		It("should return the category reference score", func() {
			Expect(SotaFor(sota, "overall")).To(HaveValue(Equal(71.4)))
		})

		It("should return nil for an unknown category", func() {
			Expect(SotaFor(sota, "coding")).To(BeNil())
		})
	})

	Describe("RankedModels", func() {
		It("should order by rank, then by score for unranked entries", func() {
			Expect(RankedModels(entries, "overall")).To(Equal([]string{"beta", "alpha", "delta", "gamma"}))
		})

		It("should only include the requested category", func() {
			Expect(RankedModels(entries, "coding")).To(Equal([]string{"alpha"}))
		})

		It("should return nothing for an empty snapshot", func() {
			Expect(RankedModels(nil, "overall")).To(BeEmpty())
		})
	})
})
