// Package planner matches models against priced hardware offerings and
// assembles the recommendation matrix.
//
// The planner sits on top of the estimator:
//
//	Catalog (offerings, specs, benchmarks)
//	        → FindSetups (filter + rank by monthly cost)
//	        → FindScaledSetups (projection fallback)
//	        → AssembleMatrix (model × concurrency tier grid)
//
// For a target concurrency it rejects offerings that cannot hold the model's
// weights, cannot sustain the requested stream count, or fall below the
// per-stream throughput floor, then ranks survivors cheapest-first. When the
// pricing catalog lacks large multi-GPU SKUs, FindScaledSetups projects a
// known single-GPU rate up to a capped GPU count and flags the result.
//
// All functions are deterministic: identical inputs produce identical output,
// including ordering. Cells of the matrix have no data dependency on one
// another.
package planner
