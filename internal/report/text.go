package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/statuswatch/statuswatch/internal/models"
)

// ANSI escapes for threshold highlighting.
const (
	red   = "\033[31m"
	reset = "\033[0m"
)

// Options controls presentation of a computed report.
type Options struct {
	Days          int
	TargetUptime  *float64           // global threshold, nil when unset
	Targets       map[string]float64 // per-component thresholds, win over the global one
	ShowIntervals bool
}

// Write renders the report as human-readable text. Lines whose uptime falls
// below the applicable target are wrapped in red.
func Write(w io.Writer, rep models.Report, opts Options) {
	fmt.Fprintf(w, "Window length: %d days\n", opts.Days)
	fmt.Fprintf(w, "Total recorded downtime: %s (%.2f minutes)\n",
		rep.Overall.TotalDowntime, rep.Overall.TotalDowntime.Minutes())
	if opts.TargetUptime != nil {
		fmt.Fprintf(w, "Required uptime target: %.5f%%\n", *opts.TargetUptime)
	}

	overallLine := fmt.Sprintf("Overall uptime: %.5f%%", rep.Overall.UptimePct)
	if opts.TargetUptime != nil && rep.Overall.UptimePct < *opts.TargetUptime {
		overallLine = red + overallLine + reset
	}
	fmt.Fprintln(w, overallLine)

	fmt.Fprintf(w, "Number of downtime intervals used: %d\n", len(rep.Overall.Intervals))

	if rep.HasResolution {
		fmt.Fprintf(w, "Average incident resolution time: %s (%.2f minutes) across %d incident(s)\n",
			rep.AvgResolution, rep.AvgResolution.Minutes(), rep.IncidentCount)
	} else {
		fmt.Fprintln(w, "Average incident resolution time: no incident entries with a duration found in the window")
	}

	if len(rep.Components) > 0 {
		fmt.Fprintln(w, "\nAverage uptime per component over window:")
		for _, comp := range sortedComponents(rep.Components) {
			res := rep.Components[comp]
			line := fmt.Sprintf("  %s: uptime %.5f%% (downtime %s / %.2f minutes)",
				comp, res.UptimePct, res.TotalDowntime, res.TotalDowntime.Minutes())
			if target, ok := componentTarget(comp, opts); ok && res.UptimePct < target {
				line = red + line + reset
			}
			fmt.Fprintln(w, line)
		}
	} else {
		fmt.Fprintln(w, "\nAverage uptime per component: no component-level downtime entries with a duration found in the window")
	}

	if opts.ShowIntervals && len(rep.Overall.Intervals) > 0 {
		fmt.Fprintln(w, "\nMerged downtime intervals:")
		for _, iv := range rep.Overall.Intervals {
			fmt.Fprintf(w, "  %s -> %s (%.1f minutes)\n",
				iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339), iv.Duration().Minutes())
		}
	}
}

// Violation is one bucket whose uptime fell below its required target.
type Violation struct {
	Scope  string // "overall" or a component name
	Uptime float64
	Target float64
}

// Violations lists every bucket below its target, overall first, then
// components in name order.
func Violations(rep models.Report, opts Options) []Violation {
	var out []Violation
	if opts.TargetUptime != nil && rep.Overall.UptimePct < *opts.TargetUptime {
		out = append(out, Violation{Scope: "overall", Uptime: rep.Overall.UptimePct, Target: *opts.TargetUptime})
	}
	for _, comp := range sortedComponents(rep.Components) {
		if target, ok := componentTarget(comp, opts); ok && rep.Components[comp].UptimePct < target {
			out = append(out, Violation{Scope: comp, Uptime: rep.Components[comp].UptimePct, Target: target})
		}
	}
	return out
}

// componentTarget resolves the threshold for one component: an explicit
// per-component target wins over the global one.
func componentTarget(comp string, opts Options) (float64, bool) {
	if target, ok := opts.Targets[comp]; ok {
		return target, true
	}
	if opts.TargetUptime != nil {
		return *opts.TargetUptime, true
	}
	return 0, false
}

func sortedComponents(m map[string]models.UptimeResult) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
