package sequence

import "context"

// StartAt is the value a counter holds before its first Next; the first
// serial handed out is StartAt+1.
const StartAt int64 = 1000

// Names of the counters in use.
const Loan = "loan"

// Generator hands out monotonically increasing integers per counter name.
// Implementations must be safe for concurrent callers across processes.
type Generator interface {
	Next(ctx context.Context, name string) (int64, error)
}
