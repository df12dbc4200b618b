package powerstore

import "time"

// Response schemas for the REST endpoints the probe consumes. Only the
// selected fields are declared; the API returns exactly what the select
// query names.

// Appliance identifies a PowerStore appliance.
type Appliance struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event is one entry of the appliance event log.
type Event struct {
	ID                 string    `json:"id"`
	Severity           string    `json:"severity"`
	ResourceType       string    `json:"resource_type"`
	GeneratedTimestamp time.Time `json:"generated_timestamp"`
	Description        string    `json:"description_l10n"`
}

// Hardware is one hardware component of the appliance.
type Hardware struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	LifecycleState string `json:"lifecycle_state"`
	PartNumber     string `json:"part_number"`
	SerialNumber   string `json:"serial_number"`
}

// SpaceSample is one sample of the space_metrics_by_appliance series.
type SpaceSample struct {
	Timestamp         time.Time `json:"timestamp"`
	LastPhysicalTotal float64   `json:"last_physical_total"`
	LastPhysicalUsed  float64   `json:"last_physical_used"`
	LastDataReduction float64   `json:"last_data_reduction"`
}

// PerfSample is one sample of the performance_metrics_by_appliance series.
type PerfSample struct {
	Timestamp         time.Time `json:"timestamp"`
	AvgReadBandwidth  float64   `json:"avg_read_bandwidth"`
	AvgWriteBandwidth float64   `json:"avg_write_bandwidth"`
	AvgReadLatency    float64   `json:"avg_read_latency"`
	AvgWriteLatency   float64   `json:"avg_write_latency"`
	AvgReadIOPS       float64   `json:"avg_read_iops"`
	AvgWriteIOPS      float64   `json:"avg_write_iops"`
}

// apiError is the error body the appliance returns on failed calls.
type apiError struct {
	Messages []struct {
		Code     string `json:"code"`
		Severity string `json:"severity"`
		Message  string `json:"message_l10n"`
	} `json:"messages"`
}

// generateRequest is the body of a POST metrics/generate call.
type generateRequest struct {
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
	Interval string `json:"interval"`
}
