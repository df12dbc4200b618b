package report

import "fmt"

// BuildDevice maps a device report to its two status channels plus a
// combined summary line.
func BuildDevice(r *DeviceReport) *Report {
	return &Report{
		Text: fmt.Sprintf("Events: %s / Hardware: %s", r.EventSummary, r.HardwareSummary),
		Channels: []Channel{
			{
				Name:     "Events",
				Value:    float64(r.EventStatus),
				MaxError: &Limit{Value: 0, Message: "Major Error in Eventlog"},
			},
			{
				Name:     "Status",
				Value:    float64(r.HardwareStatus),
				MaxError: &Limit{Value: 0, Message: "Hardwarestatus degraded"},
			},
		},
	}
}

// BuildCapacity maps a capacity report to its six channels.
func BuildCapacity(r *CapacityReport) *Report {
	return &Report{
		Channels: []Channel{
			{Name: "Total Space", Value: r.TotalTB, Unit: "TB", Float: true},
			{Name: "Free Space", Value: r.FreeTB, Unit: "TB", Float: true},
			{
				Name:       "Free %",
				Value:      r.FreePercent,
				Unit:       "%",
				Float:      true,
				MinWarning: &Limit{Value: 20, Message: "Less than 20% free space left"},
				MinError:   &Limit{Value: 10, Message: "Less than 10% free space left"},
			},
			{Name: "Used Space", Value: r.UsedTB, Unit: "TB", Float: true},
			{Name: "Used %", Value: r.UsedPercent, Unit: "%", Float: true},
			{Name: "Data Reduction Rate", Value: r.DataReductionRatio, Float: true},
		},
	}
}

// BuildPerformance maps a performance report to its six channels.
// "Bandwith" is the channel name the consuming sensor definitions were
// configured with; renaming it would orphan historic channel data.
func BuildPerformance(r *PerformanceReport) *Report {
	return &Report{
		Channels: []Channel{
			{Name: "Read Bandwith", Value: r.ReadBandwidth, Unit: "MB/s", Float: true},
			{Name: "Write Bandwith", Value: r.WriteBandwidth, Unit: "MB/s", Float: true},
			{Name: "Read Latency", Value: r.ReadLatency, Unit: "ms", Float: true},
			{Name: "Write Latency", Value: r.WriteLatency, Unit: "ms", Float: true},
			{Name: "Read IOPS", Value: r.ReadOps, Float: true},
			{Name: "Write IOPS", Value: r.WriteOps, Float: true},
		},
	}
}
