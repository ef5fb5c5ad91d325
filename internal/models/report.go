package models

import "time"

// Interval is a downtime span with Start <= End.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Window is the analysis window [Start, Now).
type Window struct {
	Start time.Time
	Now   time.Time
}

func (w Window) Length() time.Duration {
	return w.Now.Sub(w.Start)
}

// UptimeResult is the merged downtime picture for one bucket, either the
// overall service or a single component.
type UptimeResult struct {
	UptimePct     float64
	TotalDowntime time.Duration
	Intervals     []Interval // sorted, disjoint
}

// Report is the outcome of one computation pass.
type Report struct {
	Window        Window
	Overall       UptimeResult
	IncidentCount int
	AvgResolution time.Duration
	HasResolution bool // false when no incident with a duration was seen
	Components    map[string]UptimeResult
}
