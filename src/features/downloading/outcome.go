package downloading

// Outcome classifies the result of retrieving a single track.
type Outcome int

const (
	// Success means the stream was fetched and written to disk.
	Success Outcome = iota
	// SkippedExists means the destination file was already present and
	// overwriting is off. No network call was made for the item.
	SkippedExists
	// NoStream means the service offers no progressive-download stream
	// for the track (adaptive-only). Tallied apart from generic
	// failures since it is a platform limitation, not an error here.
	NoStream
	// TransportFailed covers network and filesystem errors. Final for
	// the current run; there are no retries.
	TransportFailed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case SkippedExists:
		return "skipped_exists"
	case NoStream:
		return "no_stream"
	case TransportFailed:
		return "transport_failed"
	default:
		return "unknown"
	}
}

// RunStatistics aggregates per-item outcomes over one batch. A fresh
// value is produced per run; nothing accumulates across invocations.
type RunStatistics struct {
	Attempted      int
	Succeeded      int
	FailedGeneric  int
	FailedNoStream int
}

// Failed reports how many items did not end with a file on disk.
func (s RunStatistics) Failed() int {
	return s.FailedGeneric + s.FailedNoStream
}

func (s *RunStatistics) record(outcome Outcome) {
	switch outcome {
	case Success, SkippedExists:
		// an already-present file is as good as a fresh one
		s.Succeeded++
	case NoStream:
		s.FailedNoStream++
	case TransportFailed:
		s.FailedGeneric++
	}
}
