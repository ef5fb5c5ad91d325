package uptime

import (
	"time"

	"github.com/statuswatch/statuswatch/internal/models"
	"github.com/statuswatch/statuswatch/internal/parser"
)

// NewWindow returns the analysis window ending at now and looking back the
// given number of days.
func NewWindow(now time.Time, days int) models.Window {
	return models.Window{
		Start: now.Add(-time.Duration(days) * 24 * time.Hour),
		Now:   now,
	}
}

// Compute runs one uptime pass over the given records. Records without a
// parseable declared duration are skipped. Each remaining record yields an
// interval [StartTime, StartTime+duration) which is clipped to the window
// and accumulated into the overall bucket and into the bucket of every
// affected component; buckets are then merged and converted to percentages.
//
// The pass is pure: the same records and window always produce the same
// report, regardless of record order.
func Compute(records []models.FeedRecord, window models.Window) models.Report {
	var (
		overall       []models.Interval
		byComponent   = make(map[string][]models.Interval)
		incidentTotal time.Duration
		incidentCount int
	)

	for _, rec := range records {
		dur, ok := parser.ParseDuration(rec.Description)
		if !ok {
			// No declared duration, nothing to count.
			continue
		}

		start := rec.StartTime
		end := start.Add(dur)

		// Resolution stats use the full declared duration for incidents
		// that started inside the window, even when the outage runs past
		// the window edge.
		if rec.IncidentType == "incident" && !start.Before(window.Start) && !start.After(window.Now) {
			incidentTotal += dur
			incidentCount++
		}

		// Clip to the analysis window.
		if !end.After(window.Start) || !start.Before(window.Now) {
			continue
		}
		clipped := models.Interval{
			Start: maxTime(start, window.Start),
			End:   minTime(end, window.Now),
		}
		if !clipped.Start.Before(clipped.End) {
			continue
		}

		overall = append(overall, clipped)
		for _, comp := range rec.Components {
			byComponent[comp] = append(byComponent[comp], clipped)
		}
	}

	report := models.Report{
		Window:        window,
		Overall:       bucketResult(overall, window),
		IncidentCount: incidentCount,
		Components:    make(map[string]models.UptimeResult, len(byComponent)),
	}
	if incidentCount > 0 {
		report.AvgResolution = incidentTotal / time.Duration(incidentCount)
		report.HasResolution = true
	}
	for comp, intervals := range byComponent {
		report.Components[comp] = bucketResult(intervals, window)
	}
	return report
}

// bucketResult merges one bucket's intervals and converts the covered
// downtime into an uptime percentage. A non-positive window counts as 100%
// uptime.
func bucketResult(intervals []models.Interval, window models.Window) models.UptimeResult {
	merged := Merge(intervals)

	var downtime time.Duration
	for _, iv := range merged {
		downtime += iv.Duration()
	}

	pct := 100.0
	if windowSecs := window.Length().Seconds(); windowSecs > 0 {
		pct = (1.0 - downtime.Seconds()/windowSecs) * 100.0
		if pct < 0 {
			pct = 0
		}
	}

	return models.UptimeResult{
		UptimePct:     pct,
		TotalDowntime: downtime,
		Intervals:     merged,
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
