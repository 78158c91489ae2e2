// Package metrics counts overlay renders and metadata lookups in a
// caller-owned prometheus registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jpfielding/overlay.go/pkg/metadata"
	"github.com/jpfielding/overlay.go/pkg/overlay"
)

// Metrics holds the overlay counters
type Metrics struct {
	registry *prometheus.Registry

	RendersTotal *prometheus.CounterVec
	LinesTotal   *prometheus.CounterVec
	LookupsTotal *prometheus.CounterVec
}

// New creates the counters and registers them with reg
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		RendersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlay_renders_total",
				Help: "Overlay renders by outcome",
			},
			[]string{"state"},
		),
		LinesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlay_lines_total",
				Help: "Overlay lines drawn per region",
			},
			[]string{"region"},
		),
		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "overlay_metadata_lookups_total",
				Help: "Metadata lookups by category and result",
			},
			[]string{"category", "result"},
		),
	}
}

// ObserveRender records one render; a nil overlay is the empty state
func (m *Metrics) ObserveRender(ov *overlay.Overlay) {
	if ov == nil {
		m.RendersTotal.WithLabelValues("empty").Inc()
		return
	}
	m.RendersTotal.WithLabelValues("rendered").Inc()
	for _, r := range ov.Regions() {
		m.LinesTotal.WithLabelValues(r.Name).Add(float64(len(r.Lines)))
	}
}

// InstrumentProvider counts the hits and misses of p
func (m *Metrics) InstrumentProvider(p metadata.Provider) metadata.Provider {
	return metadata.ProviderFunc(func(category metadata.Category, imageID string) any {
		rec := p.Metadata(category, imageID)
		result := "hit"
		if rec == nil {
			result = "miss"
		}
		m.LookupsTotal.WithLabelValues(string(category), result).Inc()
		return rec
	})
}

// WriteTextfile writes the registry in the text exposition format, for the node exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
