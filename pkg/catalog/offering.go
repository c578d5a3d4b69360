package catalog

import "strings"

// Offering is one priced hardware configuration from the pricing catalog.
// Immutable, externally supplied; the engine never mutates it.
type Offering struct {
	// GPUName is the short hardware name, e.g. "H100", "A100_80G".
	GPUName string `json:"gpu_name"`

	// VRAMGB is the memory of a single GPU in GB.
	VRAMGB float64 `json:"vram_gb"`

	// GPUCount is the number of GPUs in the configuration.
	GPUCount int `json:"gpu_count"`

	// TotalVRAMGB is the aggregate memory across all GPUs.
	TotalVRAMGB float64 `json:"total_vram_gb"`

	// PricePerHour is the on-demand hourly price.
	PricePerHour float64 `json:"price_per_hour"`

	// Currency is the price currency code, e.g. "USD".
	Currency string `json:"currency,omitempty"`

	// Provider, InstanceName and Location identify where the offering comes
	// from. Opaque to the engine.
	Provider     string `json:"provider,omitempty"`
	InstanceName string `json:"instance_name,omitempty"`
	Location     string `json:"location,omitempty"`

	// Interconnect is a free-form interconnect descriptor, e.g.
	// "NVLink 900 GB/s" or "PCIe 4.0". Nil when the pricing source does not
	// report it.
	Interconnect *string `json:"interconnect,omitempty"`
}

// HasNVLink reports whether the offering's interconnect descriptor names an
// NVLink variant. The match is a case-insensitive prefix check; a nil or
// unrecognized descriptor counts as not NVLink.
func (o *Offering) HasNVLink() bool {
	if o.Interconnect == nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(*o.Interconnect)), "nvlink")
}

// MonthlyCost returns the cost of running the offering for one month,
// assuming 720 on-demand hours.
func (o *Offering) MonthlyCost() float64 {
	return o.PricePerHour * HoursPerMonth
}

// HoursPerMonth is the billing convention used for monthly cost figures.
const HoursPerMonth = 720
