package report

import "testing"

func channelNames(r *Report) []string {
	names := make([]string, len(r.Channels))
	for i, ch := range r.Channels {
		names[i] = ch.Name
	}
	return names
}

func assertNames(t *testing.T, r *Report, want []string) {
	t.Helper()
	got := channelNames(r)
	if len(got) != len(want) {
		t.Fatalf("expected %d channels, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("channel %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBuildDevice(t *testing.T) {
	r := BuildDevice(&DeviceReport{
		EventSummary:    "OK",
		EventStatus:     0,
		HardwareSummary: "Healthy",
		HardwareStatus:  0,
	})

	assertNames(t, r, []string{"Events", "Status"})

	if r.Text != "Events: OK / Hardware: Healthy" {
		t.Errorf("unexpected summary text: %q", r.Text)
	}

	events := r.Channels[0]
	if events.Value != 0 || events.Float {
		t.Errorf("Events channel should be integer 0, got %+v", events)
	}
	if events.MaxError == nil || events.MaxError.Value != 0 {
		t.Fatalf("Events channel needs a max error limit at 0, got %+v", events.MaxError)
	}
	if events.MaxError.Message != "Major Error in Eventlog" {
		t.Errorf("unexpected Events limit message: %q", events.MaxError.Message)
	}

	status := r.Channels[1]
	if status.MaxError == nil || status.MaxError.Message != "Hardwarestatus degraded" {
		t.Errorf("unexpected Status limit: %+v", status.MaxError)
	}
}

func TestBuildDeviceDegraded(t *testing.T) {
	r := BuildDevice(&DeviceReport{
		EventSummary:    "Drive failure detected",
		EventStatus:     1,
		HardwareSummary: "Drive: Drive_0_1 Failed - Partnumber: X / Serialnumber: Y",
		HardwareStatus:  1,
	})

	if r.Channels[0].Value != 1 {
		t.Errorf("expected Events value 1, got %v", r.Channels[0].Value)
	}
	if r.Channels[1].Value != 1 {
		t.Errorf("expected Status value 1, got %v", r.Channels[1].Value)
	}
}

func TestBuildCapacity(t *testing.T) {
	r := BuildCapacity(&CapacityReport{
		TotalTB:            10.0,
		FreeTB:             6.0,
		FreePercent:        60.0,
		UsedTB:             4.0,
		UsedPercent:        40.0,
		DataReductionRatio: 3.2,
	})

	assertNames(t, r, []string{
		"Total Space", "Free Space", "Free %", "Used Space", "Used %", "Data Reduction Rate",
	})

	if r.Text != "" {
		t.Errorf("capacity report should carry no summary text, got %q", r.Text)
	}

	free := r.Channels[2]
	if free.MinWarning == nil || free.MinWarning.Value != 20 {
		t.Fatalf("Free %% needs a min warning limit at 20, got %+v", free.MinWarning)
	}
	if free.MinError == nil || free.MinError.Value != 10 {
		t.Fatalf("Free %% needs a min error limit at 10, got %+v", free.MinError)
	}

	for i, unit := range []string{"TB", "TB", "%", "TB", "%", ""} {
		if r.Channels[i].Unit != unit {
			t.Errorf("channel %q: expected unit %q, got %q", r.Channels[i].Name, unit, r.Channels[i].Unit)
		}
		if !r.Channels[i].Float {
			t.Errorf("channel %q should be float", r.Channels[i].Name)
		}
	}
}

func TestBuildPerformance(t *testing.T) {
	r := BuildPerformance(&PerformanceReport{
		ReadBandwidth:  5.0,
		WriteBandwidth: 2.5,
		ReadLatency:    1.5,
		WriteLatency:   0.75,
		ReadOps:        1200.5,
		WriteOps:       300.1,
	})

	assertNames(t, r, []string{
		"Read Bandwith", "Write Bandwith", "Read Latency", "Write Latency", "Read IOPS", "Write IOPS",
	})

	for i, unit := range []string{"MB/s", "MB/s", "ms", "ms", "", ""} {
		if r.Channels[i].Unit != unit {
			t.Errorf("channel %q: expected unit %q, got %q", r.Channels[i].Name, unit, r.Channels[i].Unit)
		}
	}

	for _, ch := range r.Channels {
		if ch.MaxWarning != nil || ch.MaxError != nil || ch.MinWarning != nil || ch.MinError != nil {
			t.Errorf("performance channel %q should carry no limits", ch.Name)
		}
	}
}
