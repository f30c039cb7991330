// Package metrics records cache activity with Prometheus collectors.
package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
)

const namespace = "exsd"

var _ ports.CacheObserver = (*Recorder)(nil)

// Recorder implements ports.CacheObserver on a private registry.
type Recorder struct {
	registry      *prometheus.Registry
	lookups       *prometheus.CounterVec
	parseFailures prometheus.Counter
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Total number of definition lookups by serving tier",
			},
			[]string{"tier"},
		),
		parseFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_failures_total",
				Help:      "Total number of schema files that failed to parse",
			},
		),
	}
}

// ObserveLookup records which tier served a lookup.
func (r *Recorder) ObserveLookup(tier domain.CacheTier) {
	r.lookups.WithLabelValues(tier.String()).Inc()
}

// ObserveParseFailure records a file that could not be parsed.
func (r *Recorder) ObserveParseFailure() {
	r.parseFailures.Inc()
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Sample is one counter value.
type Sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Snapshot returns the current counter values ordered by name. Labelled
// series are named metric{label="value"}.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, family := range families {
		for _, m := range family.GetMetric() {
			name := family.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, l := range labels {
					pairs = append(pairs, l.GetName()+`="`+l.GetValue()+`"`)
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			samples = append(samples, Sample{Name: name, Value: m.GetCounter().GetValue()})
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}
