package navhistory

const (
	// DefaultSpaceBarrier is the minimum line distance a move must exceed to
	// be recorded.
	DefaultSpaceBarrier = 25
	// DefaultHistoryLimit is the maximum number of positions kept per document.
	DefaultHistoryLimit = 20
)

// Limits are the host-configured thresholds applied when recording.
//
// They are passed on every SelectionChanged call so hosts can change them
// at runtime.
type Limits struct {
	SpaceBarrier int
	HistoryLimit int
}

func DefaultLimits() Limits {
	return Limits{
		SpaceBarrier: DefaultSpaceBarrier,
		HistoryLimit: DefaultHistoryLimit,
	}
}

func (l Limits) historyLimit() int {
	if l.HistoryLimit <= 0 {
		return DefaultHistoryLimit
	}
	return l.HistoryLimit
}

// LineDiffFunc reports the line distance between the start of newPos and the
// end of oldPos, typically the number of lines that span covers. It must be
// monotonic with vertical distance. A move is recorded only when the result
// exceeds Limits.SpaceBarrier.
type LineDiffFunc[P any] func(newPos, oldPos P) int
