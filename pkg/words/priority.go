package words

import "fmt"

// Priority ranks recognizers. Higher priorities are tried first.
type Priority int

const (
	// Lowest is reserved for catch-all recognizers such as NormalRecognizer.
	Lowest Priority = iota + 1
	LowMid
	// Mid is the default priority.
	Mid
	HighMid
	// Highest is the default for Literal recognizers.
	Highest
)

// priorities is the canonical trial order.
var priorities = [...]Priority{Highest, HighMid, Mid, LowMid, Lowest}

// Priorities returns every priority level from Highest to Lowest.
func Priorities() []Priority {
	out := make([]Priority, len(priorities))
	copy(out, priorities[:])
	return out
}

// Valid reports whether p is one of the five priority levels.
func (p Priority) Valid() bool {
	return p >= Lowest && p <= Highest
}

// String returns the name of the priority level.
func (p Priority) String() string {
	switch p {
	case Highest:
		return "highest"
	case HighMid:
		return "high-mid"
	case Mid:
		return "mid"
	case LowMid:
		return "low-mid"
	case Lowest:
		return "lowest"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// index maps a valid priority to its position in the trial order.
func (p Priority) index() int {
	return int(Highest - p)
}
