package estimator

import (
	"math"
	"strings"
)

// maxTensorParallelPerNode is the single-node GPU topology ceiling: up to 8
// GPUs share high-bandwidth intra-node links and do tensor parallelism;
// anything beyond adds pipeline stages on further nodes.
const maxTensorParallelPerNode = 8

// TP communication penalty per doubling of tensor-parallel width.
const (
	tpPenaltyNVLink = 0.05
	tpPenaltyPCIe   = 0.12
)

// Topology is the derived parallel layout of a multi-GPU configuration.
type Topology struct {
	// TP is the tensor-parallel degree (GPUs splitting each layer).
	TP int

	// PP is the pipeline-parallel degree (groups of layers in sequence).
	PP int
}

// TopologyFor derives the tensor/pipeline layout for a GPU count: pure
// tensor parallelism within one node, pipeline stages across nodes.
func TopologyFor(gpuCount int) Topology {
	if gpuCount < 1 {
		gpuCount = 1
	}
	if gpuCount <= maxTensorParallelPerNode {
		return Topology{TP: gpuCount, PP: 1}
	}
	return Topology{
		TP: maxTensorParallelPerNode,
		PP: int(math.Ceil(float64(gpuCount) / maxTensorParallelPerNode)),
	}
}

// isNVLinkInterconnect reports whether a free-form interconnect descriptor
// names an NVLink variant (case-insensitive prefix match). Nil and
// unrecognized descriptors count as non-NVLink.
func isNVLinkInterconnect(interconnect *string) bool {
	if interconnect == nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(*interconnect)), "nvlink")
}

// TPEfficiency models the all-reduce cost added by each doubling of
// tensor-parallel width: 1.0 at TP 1, minus a per-doubling penalty that is
// smaller over NVLink than over PCIe.
func TPEfficiency(tp int, interconnect *string) float64 {
	if tp <= 1 {
		return 1.0
	}
	penalty := tpPenaltyPCIe
	if isNVLinkInterconnect(interconnect) {
		penalty = tpPenaltyNVLink
	}
	eff := 1 - penalty*math.Log2(float64(tp))
	if eff < 0 {
		return 0
	}
	return eff
}

// PPBubbleEfficiency is the classic pipeline fill/drain amortization:
// microBatches/(microBatches+pp-1). More in-flight requests amortize the
// bubble; zero micro-batches mean the pipeline never fills.
func PPBubbleEfficiency(pp, microBatches int) float64 {
	if pp <= 1 {
		return 1.0
	}
	if microBatches <= 0 {
		return 0
	}
	return float64(microBatches) / float64(microBatches+pp-1)
}
