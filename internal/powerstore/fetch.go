package powerstore

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	units "github.com/docker/go-units"

	"github.com/storagemon/powerstore-prtg/internal/report"
)

const (
	entitySpace       = "space_metrics_by_appliance"
	entityPerformance = "performance_metrics_by_appliance"

	eventResource     = "event?select=id,severity,resource_type,generated_timestamp,description_l10n&order=generated_timestamp.desc"
	hardwareResource  = "hardware?select=id,name,type,lifecycle_state,part_number,serial_number"
	applianceResource = "appliance?select=id,name"
)

// Device fetches the event log and hardware list and reduces each to a
// summary plus a binary status flag.
func (c *Client) Device(ctx context.Context) (*report.DeviceReport, error) {
	var events []Event
	if err := c.fetchRead(ctx, eventResource, &events); err != nil {
		return nil, err
	}

	var hardware []Hardware
	if err := c.fetchRead(ctx, hardwareResource, &hardware); err != nil {
		return nil, err
	}

	r := &report.DeviceReport{}
	r.EventSummary, r.EventStatus = reduceEvents(events)
	r.HardwareSummary, r.HardwareStatus = reduceHardware(hardware)
	return r, nil
}

// Capacity generates the space metric series for the appliance and derives
// the capacity report from the most recent sample.
func (c *Client) Capacity(ctx context.Context) (*report.CapacityReport, error) {
	id, err := c.applianceID(ctx)
	if err != nil {
		return nil, err
	}

	var samples []SpaceSample
	if err := c.fetchGenerate(ctx, entitySpace, id, &samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, &RequestError{URL: c.baseURL + "metrics/generate", Message: "no space samples returned"}
	}

	s := samples[0]
	for _, cand := range samples[1:] {
		if cand.Timestamp.After(s.Timestamp) {
			s = cand
		}
	}

	slog.Debug("space sample",
		"timestamp", s.Timestamp,
		"total", units.HumanSize(s.LastPhysicalTotal),
		"used", units.HumanSize(s.LastPhysicalUsed),
	)

	total := s.LastPhysicalTotal
	used := s.LastPhysicalUsed
	free := total - used
	freePercent := round1(free / total * 100)

	return &report.CapacityReport{
		TotalTB:     round1(total / 1e12),
		FreeTB:      round1(free / 1e12),
		FreePercent: freePercent,
		UsedTB:      round1(used / 1e12),
		// Derived from FreePercent so the pair always sums to 100; an
		// independent rounding of used/total can diverge by 0.1.
		UsedPercent:        100 - freePercent,
		DataReductionRatio: round1(s.LastDataReduction),
	}, nil
}

// Performance generates the performance metric series for the appliance and
// derives the performance report from the most recent sample.
func (c *Client) Performance(ctx context.Context) (*report.PerformanceReport, error) {
	id, err := c.applianceID(ctx)
	if err != nil {
		return nil, err
	}

	var samples []PerfSample
	if err := c.fetchGenerate(ctx, entityPerformance, id, &samples); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, &RequestError{URL: c.baseURL + "metrics/generate", Message: "no performance samples returned"}
	}

	s := samples[0]
	for _, cand := range samples[1:] {
		if cand.Timestamp.After(s.Timestamp) {
			s = cand
		}
	}

	return &report.PerformanceReport{
		ReadBandwidth:  round1(s.AvgReadBandwidth / 1e6),
		WriteBandwidth: round1(s.AvgWriteBandwidth / 1e6),
		ReadLatency:    round2(s.AvgReadLatency / 1000),
		WriteLatency:   round2(s.AvgWriteLatency / 1000),
		ReadOps:        round1(s.AvgReadIOPS),
		WriteOps:       round1(s.AvgWriteIOPS),
	}, nil
}

// applianceID resolves the appliance identifier used by metrics/generate.
func (c *Client) applianceID(ctx context.Context) (string, error) {
	var appliances []Appliance
	if err := c.fetchRead(ctx, applianceResource, &appliances); err != nil {
		return "", err
	}
	if len(appliances) == 0 || appliances[0].ID == "" {
		return "", &RequestError{URL: c.baseURL + applianceResource, Message: "no appliance returned"}
	}
	return appliances[0].ID, nil
}

// reduceEvents picks the first Major event in response order, skipping the
// known false-positive "node port cabling" alerts.
func reduceEvents(events []Event) (summary string, status int) {
	for _, e := range events {
		if e.Severity != "Major" {
			continue
		}
		if strings.Contains(e.Description, "node port cabling") {
			continue
		}
		return e.Description, 1
	}
	return "OK", 0
}

// reduceHardware lists every component whose lifecycle state is neither
// Healthy nor Empty. Components without a lifecycle state are skipped.
func reduceHardware(hardware []Hardware) (summary string, status int) {
	var lines []string
	for _, h := range hardware {
		if h.LifecycleState == "" || h.LifecycleState == "Healthy" || h.LifecycleState == "Empty" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s %s - Partnumber: %s / Serialnumber: %s",
			h.Type, h.Name, h.LifecycleState, h.PartNumber, h.SerialNumber))
	}
	if len(lines) == 0 {
		return "Healthy", 0
	}
	return strings.Join(lines, "\n"), 1
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
