package cachesim

import "github.com/nkanderson/ECE585-llc/internal/metrics"

// Statistics holds the four monotonically non-decreasing counters the
// simulator tracks, plus the derived hit ratio. Reset only by Clear.
type Statistics struct {
	reads, writes, hits, misses uint64
	recorder                    metrics.Recorder
}

// NewStatistics builds a Statistics that also forwards every increment
// to recorder. Pass metrics.Noop{} when no external metrics sink is
// wanted.
func NewStatistics(recorder metrics.Recorder) *Statistics {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Statistics{recorder: recorder}
}

func (s *Statistics) RecordRead() {
	s.reads++
	s.recorder.IncReads()
}

func (s *Statistics) RecordWrite() {
	s.writes++
	s.recorder.IncWrites()
}

func (s *Statistics) RecordHit() {
	s.hits++
	s.recorder.IncHits()
}

func (s *Statistics) RecordMiss() {
	s.misses++
	s.recorder.IncMisses()
}

// Reads, Writes, Hits, and Misses expose the raw counters.
func (s *Statistics) Reads() uint64  { return s.reads }
func (s *Statistics) Writes() uint64 { return s.writes }
func (s *Statistics) Hits() uint64   { return s.hits }
func (s *Statistics) Misses() uint64 { return s.misses }

// HitRatio returns hits/(hits+misses), defined as 0 with no accesses.
func (s *Statistics) HitRatio() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total)
}

// Clear zeroes every counter. It does not touch the recorder: an
// external metrics system keeps its own cumulative totals.
func (s *Statistics) Clear() {
	s.reads, s.writes, s.hits, s.misses = 0, 0, 0, 0
}

// Report renders the fixed-format multi-line statistics block emitted
// at the end of a run and is always shown regardless of verbosity.
func (s *Statistics) Report() string {
	return fmtStats(s.reads, s.writes, s.hits, s.misses, s.HitRatio())
}
