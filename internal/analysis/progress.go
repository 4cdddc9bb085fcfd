package analysis

// Default progress cadence.
const (
	DefaultSmallRange int64 = 200
	DefaultInterval   int64 = 100
)

// Reporter observes range progress. Calls are serialised.
type Reporter interface {
	Progress(processed, total, current int64)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(processed, total, current int64)

// Progress calls f.
func (f ReporterFunc) Progress(processed, total, current int64) {
	f(processed, total, current)
}

// ShouldReport decides whether the processed-th value of total is worth a
// progress notification. Ranges of at most smallRange values report roughly
// ten times; larger ranges report on the first value, every interval values
// and the last value.
func ShouldReport(processed, total, smallRange, interval int64) bool {
	if processed == total {
		return true
	}
	if total <= smallRange {
		return processed%(total/10+1) == 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return processed == 1 || processed%interval == 0
}
