package catalog

import "sort"

// BenchmarkEntry is one row of a benchmark snapshot: a model's score in one
// category, ranked within that category.
type BenchmarkEntry struct {
	ModelName        string   `json:"model_name"`
	Benchmark        string   `json:"benchmark_name"`
	DisplayName      string   `json:"benchmark_display_name,omitempty"`
	Score            float64  `json:"score"`
	Rank             int      `json:"rank"`
	CostPerTask      *float64 `json:"cost_per_task,omitempty"`
	Group            string   `json:"benchmark_group,omitempty"`
	GroupDisplayName string   `json:"benchmark_group_display,omitempty"`
}

// SotaEntry records the best known score in one benchmark category.
type SotaEntry struct {
	Benchmark   string  `json:"benchmark_name"`
	DisplayName string  `json:"benchmark_display_name,omitempty"`
	ModelName   string  `json:"sota_model_name"`
	Score       float64 `json:"sota_score"`
}

// ScoreFor returns the score of a model in a benchmark category, or nil when
// the model has no entry there.
func ScoreFor(entries []BenchmarkEntry, model, benchmark string) *float64 {
	for i := range entries {
		if entries[i].ModelName == model && entries[i].Benchmark == benchmark {
			s := entries[i].Score
			return &s
		}
	}
	return nil
}

// SotaFor returns the state-of-the-art reference score for a benchmark
// category, or nil when none is recorded.
func SotaFor(sota []SotaEntry, benchmark string) *float64 {
	for i := range sota {
		if sota[i].Benchmark == benchmark {
			s := sota[i].Score
			return &s
		}
	}
	return nil
}

// RankedModels returns the model names of one benchmark category ordered by
// rank. Entries without a positive rank fall back to score ordering, highest
// first. The sort is stable so repeated calls yield identical grids.
func RankedModels(entries []BenchmarkEntry, benchmark string) []string {
	var rows []BenchmarkEntry
	for _, e := range entries {
		if e.Benchmark == benchmark {
			rows = append(rows, e)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Rank > 0 && rows[j].Rank > 0 && rows[i].Rank != rows[j].Rank {
			return rows[i].Rank < rows[j].Rank
		}
		return rows[i].Score > rows[j].Score
	})
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.ModelName)
	}
	return names
}
