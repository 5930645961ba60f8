package crossword

import "github.com/sirupsen/logrus"

// Tracer observes the backtracking search. Implementations must not
// mutate any of the values they are handed.
type Tracer interface {
	// Select is called when the search picks the next slot to branch on.
	Select(slot Slot, remaining int)
	// Try is called before a candidate word is tentatively assigned.
	Try(slot Slot, word string)
	// Backtrack is called when every candidate for a slot is exhausted.
	Backtrack(slot Slot)
}

// DefaultTracer ignores all search events.
type DefaultTracer struct{}

func (DefaultTracer) Select(_ Slot, _ int) {}
func (DefaultTracer) Try(_ Slot, _ string) {}
func (DefaultTracer) Backtrack(_ Slot)     {}

// LoggingTracer reports search events at debug level.
type LoggingTracer struct {
	Logger logrus.FieldLogger
}

func (t LoggingTracer) Select(slot Slot, remaining int) {
	t.Logger.WithFields(logrus.Fields{"slot": slot.String(), "remaining": remaining}).Debug("select slot")
}

func (t LoggingTracer) Try(slot Slot, word string) {
	t.Logger.WithFields(logrus.Fields{"slot": slot.String(), "word": word}).Debug("try candidate")
}

func (t LoggingTracer) Backtrack(slot Slot) {
	t.Logger.WithField("slot", slot.String()).Debug("backtrack")
}
