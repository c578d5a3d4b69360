// Package estimator implements the closed-form capacity math for LLM serving.
//
// The estimator turns model metadata and GPU capability records into memory
// footprints, decode throughput, and concurrency limits:
//
//	Precision/Memory → KV Cache → Parallelism/Throughput → Capacity
//
// Key components:
//
//   - Precision resolution and weight memory (total vs active), including the
//     mixed-precision split for INT4-quantized expert models
//   - KV cache cost per token and per request for the GQA and MLA attention
//     families
//   - Tensor/pipeline parallel topology with communication penalties, and the
//     bandwidth-bound decode throughput model
//   - The concurrency solver: how many simultaneous request streams fit in
//     the VRAM left after weights
//
// Every function is a pure, deterministic computation over immutable inputs.
// "Cannot compute" conditions (missing parameter counts, unknown GPUs,
// missing KV dimensions) propagate as nil pointers or zero values, never as
// errors or panics; callers treat them as "insufficient data", not failures.
//
// Unit conventions follow the published data: weight memory is quoted in
// decimal GB (params x bytes / 1e9), KV cache in binary GiB, and the two are
// subtracted from catalog VRAM figures as-is.
package estimator
