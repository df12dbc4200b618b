// Package report defines the sensor report model: the metric categories,
// the per-category report values, and the ordered channel lists handed to
// the serializer.
package report

// Category selects which metrics the probe collects.
type Category int

const (
	Device Category = iota
	Capacity
	Performance
)

// ErrInvalidCategory is returned by ParseCategory for unknown input.
type ErrInvalidCategory struct {
	Input string
}

func (e *ErrInvalidCategory) Error() string {
	return "check parameters"
}

// ParseCategory maps a mode string to a Category. Matching is exact and
// case-sensitive; the PRTG sensor configuration passes the literal value.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Device":
		return Device, nil
	case "Capacity":
		return Capacity, nil
	case "Performance":
		return Performance, nil
	default:
		return 0, &ErrInvalidCategory{Input: s}
	}
}

// String returns the mode string for the category.
func (c Category) String() string {
	switch c {
	case Device:
		return "Device"
	case Capacity:
		return "Capacity"
	case Performance:
		return "Performance"
	default:
		return "unknown"
	}
}

// DeviceReport holds the reduced event and hardware state of the appliance.
// Status fields are 0 (healthy) or 1 (degraded).
type DeviceReport struct {
	EventSummary    string
	EventStatus     int
	HardwareSummary string
	HardwareStatus  int
}

// CapacityReport holds space metrics from the most recent sample.
// Space values are terabytes, percentages are 0-100.
type CapacityReport struct {
	TotalTB            float64
	FreeTB             float64
	FreePercent        float64
	UsedTB             float64
	UsedPercent        float64
	DataReductionRatio float64
}

// PerformanceReport holds I/O metrics from the most recent sample.
// Bandwidth is MB/s, latency is milliseconds.
type PerformanceReport struct {
	ReadBandwidth  float64
	WriteBandwidth float64
	ReadLatency    float64
	WriteLatency   float64
	ReadOps        float64
	WriteOps       float64
}

// Limit is a warning or error threshold attached to a channel.
type Limit struct {
	Value   float64
	Message string
}

// Channel is one sensor channel. The order of channels in a Report is the
// display order in the monitoring platform.
type Channel struct {
	Name       string
	Value      float64
	Unit       string // empty means no unit element is emitted
	Float      bool
	MaxWarning *Limit
	MaxError   *Limit
	MinWarning *Limit
	MinError   *Limit
}

// Report is the finished sensor report: an optional free-text summary plus
// the ordered channel list.
type Report struct {
	Text     string
	Channels []Channel
}
