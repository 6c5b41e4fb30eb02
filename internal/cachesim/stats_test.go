package cachesim

import (
	"strings"
	"testing"

	"github.com/nkanderson/ECE585-llc/internal/metrics"
)

type countingRecorder struct {
	reads, writes, hits, misses int
}

func (r *countingRecorder) IncReads()  { r.reads++ }
func (r *countingRecorder) IncWrites() { r.writes++ }
func (r *countingRecorder) IncHits()   { r.hits++ }
func (r *countingRecorder) IncMisses() { r.misses++ }

func TestStatisticsForwardsToRecorder(t *testing.T) {
	rec := &countingRecorder{}
	s := NewStatistics(rec)

	s.RecordRead()
	s.RecordWrite()
	s.RecordHit()
	s.RecordMiss()

	if rec.reads != 1 || rec.writes != 1 || rec.hits != 1 || rec.misses != 1 {
		t.Errorf("recorder counts = %+v, want all 1", rec)
	}
}

func TestStatisticsHitRatio(t *testing.T) {
	s := NewStatistics(metrics.Noop{})
	if s.HitRatio() != 0 {
		t.Errorf("empty HitRatio = %f, want 0", s.HitRatio())
	}
	s.RecordHit()
	s.RecordHit()
	s.RecordMiss()
	if got, want := s.HitRatio(), 2.0/3.0; got != want {
		t.Errorf("HitRatio = %f, want %f", got, want)
	}
}

func TestStatisticsClearResetsCountersNotRecorder(t *testing.T) {
	rec := &countingRecorder{}
	s := NewStatistics(rec)
	s.RecordRead()
	s.Clear()

	if s.Reads() != 0 {
		t.Errorf("Reads() = %d after Clear, want 0", s.Reads())
	}
	if rec.reads != 1 {
		t.Errorf("recorder reads = %d, want 1 (Clear must not touch external recorder)", rec.reads)
	}
}

func TestReportContainsAllCounters(t *testing.T) {
	s := NewStatistics(metrics.Noop{})
	s.RecordRead()
	s.RecordMiss()
	report := s.Report()

	for _, want := range []string{"Cache Statistics", "cache reads:", "cache writes:", "cache hits:", "cache misses:", "hit ratio:"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report() missing %q:\n%s", want, report)
		}
	}
}
