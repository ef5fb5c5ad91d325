package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/statuswatch/statuswatch/internal/models"
)

// Collectors bundles the prometheus collectors exported in serve mode.
type Collectors struct {
	UptimePct            prometheus.Gauge
	DowntimeSeconds      prometheus.Gauge
	ComponentUptimePct   *prometheus.GaugeVec
	ComponentDowntimeSec *prometheus.GaugeVec
	IncidentCount        prometheus.Gauge
	AvgResolutionSeconds prometheus.Gauge
	RefreshErrors        prometheus.Counter
	LastRefresh          prometheus.Gauge
}

func New(registry *prometheus.Registry) *Collectors {
	c := &Collectors{
		UptimePct: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statuswatch_uptime_percent",
			Help: "Overall uptime percentage over the analysis window.",
		}),
		DowntimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statuswatch_downtime_seconds",
			Help: "Total merged downtime in seconds over the analysis window.",
		}),
		ComponentUptimePct: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statuswatch_component_uptime_percent",
			Help: "Per-component uptime percentage over the analysis window.",
		}, []string{"component"}),
		ComponentDowntimeSec: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "statuswatch_component_downtime_seconds",
			Help: "Per-component merged downtime in seconds.",
		}, []string{"component"}),
		IncidentCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statuswatch_incidents_in_window",
			Help: "Incidents with a declared duration that started inside the window.",
		}),
		AvgResolutionSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statuswatch_incident_resolution_seconds_avg",
			Help: "Average incident resolution time in seconds, 0 when no data.",
		}),
		RefreshErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statuswatch_refresh_errors_total",
			Help: "Total number of failed feed refreshes.",
		}),
		LastRefresh: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statuswatch_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful refresh.",
		}),
	}

	registry.MustRegister(
		c.UptimePct,
		c.DowntimeSeconds,
		c.ComponentUptimePct,
		c.ComponentDowntimeSec,
		c.IncidentCount,
		c.AvgResolutionSeconds,
		c.RefreshErrors,
		c.LastRefresh,
	)

	return c
}

// Update applies one pass result. Component series are reset first so
// components that dropped out of the window disappear from the export.
func (c *Collectors) Update(rep models.Report) {
	c.UptimePct.Set(rep.Overall.UptimePct)
	c.DowntimeSeconds.Set(rep.Overall.TotalDowntime.Seconds())
	c.IncidentCount.Set(float64(rep.IncidentCount))
	if rep.HasResolution {
		c.AvgResolutionSeconds.Set(rep.AvgResolution.Seconds())
	} else {
		c.AvgResolutionSeconds.Set(0)
	}

	c.ComponentUptimePct.Reset()
	c.ComponentDowntimeSec.Reset()
	for comp, res := range rep.Components {
		c.ComponentUptimePct.WithLabelValues(comp).Set(res.UptimePct)
		c.ComponentDowntimeSec.WithLabelValues(comp).Set(res.TotalDowntime.Seconds())
	}

	c.LastRefresh.SetToCurrentTime()
}
