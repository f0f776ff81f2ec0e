// Package metrics records run counters in a private Prometheus registry and
// writes them as a node-exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ervin/internal/pipeline"
)

const namespace = "ervin"

// Recorder holds the metrics of one consolidation run.
type Recorder struct {
	reg *prometheus.Registry

	batches     prometheus.Counter
	inputHits   prometheus.Counter
	outputHits  prometheus.Counter
	steps       prometheus.Counter
	events      *prometheus.CounterVec
	scaffolds   *prometheus.GaugeVec
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// New builds a Recorder on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		batches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Hit batches folded.",
		}),
		inputHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_hits_total",
			Help:      "Raw hits read across all batches.",
		}),
		outputHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "output_hits_total",
			Help:      "Consolidated hits written.",
		}),
		steps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consolidation_steps_total",
			Help:      "Pairwise consolidations run, settle rounds included.",
		}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consolidation_events_total",
			Help:      "Per-candidate outcomes by kind.",
		}, []string{"kind"}),
		scaffolds: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scaffold_hits",
			Help:      "Hits per scaffold before and after consolidation.",
		}, []string{"scaffold", "stage"}),
		duration: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the run.",
		}),
		lastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time the run finished.",
		}),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records a finished run.
func (r *Recorder) Observe(rep pipeline.Report, elapsed time.Duration, now time.Time) {
	st := rep.Stats
	r.batches.Add(float64(st.Batches))
	r.inputHits.Add(float64(st.InputHits))
	r.outputHits.Add(float64(st.OutputHits))
	r.steps.Add(float64(st.Steps))

	for kind, n := range map[string]int{
		"merge":        st.Merges,
		"superset":     st.Supersets,
		"filtered":     st.Filtered,
		"collapsed":    st.Collapsed,
		"retained":     st.Retained,
		"pass_through": st.PassThrough,
	} {
		r.events.WithLabelValues(kind).Add(float64(n))
	}

	for scaf, n := range rep.Inputs {
		r.scaffolds.WithLabelValues(scaf, "input").Set(float64(n))
		r.scaffolds.WithLabelValues(scaf, "output").Set(float64(rep.Outputs[scaf]))
	}
	r.duration.Set(elapsed.Seconds())
	r.lastSuccess.Set(float64(now.Unix()))
}

// WriteFile writes the registry to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
