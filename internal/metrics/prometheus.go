package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus is a Recorder backed by four prometheus.Counters,
// registered against an injected Registerer rather than the global
// default registry — so a test can supply its own registry and a
// production binary can compose this into a larger metrics surface.
type Prometheus struct {
	reads  prometheus.Counter
	writes prometheus.Counter
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewPrometheus registers the four counters against reg under the
// llc_simulator namespace and returns a Recorder backed by them.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "llc_simulator",
			Name:      "reads_total",
			Help:      "Total processor read requests seen by the cache.",
		}),
		writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "llc_simulator",
			Name:      "writes_total",
			Help:      "Total processor write requests seen by the cache.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "llc_simulator",
			Name:      "hits_total",
			Help:      "Total processor requests that hit in the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "llc_simulator",
			Name:      "misses_total",
			Help:      "Total processor requests that missed in the cache.",
		}),
	}

	for _, c := range []prometheus.Collector{p.reads, p.writes, p.hits, p.misses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) IncReads()  { p.reads.Inc() }
func (p *Prometheus) IncWrites() { p.writes.Inc() }
func (p *Prometheus) IncHits()   { p.hits.Inc() }
func (p *Prometheus) IncMisses() { p.misses.Inc() }
