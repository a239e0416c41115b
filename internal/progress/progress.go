// Package progress defines the events components use to report what they
// are doing. Components never print; they hand events to a Func supplied
// by the command.
package progress

import "fmt"

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns a short lower-case name for the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Event represents a progress update.
//
// Events emitted while working through a batch carry the batch position in
// Done and Total; Total is zero otherwise.
type Event struct {
	Message string
	Level   Level
	Done    int
	Total   int
}

// Func receives progress events. A nil Func discards them.
type Func func(Event)

// Emit sends an event built from a format string.
func (f Func) Emit(level Level, format string, args ...any) {
	if f == nil {
		return
	}
	f(Event{Message: fmt.Sprintf(format, args...), Level: level})
}

// Step sends an event tied to a batch position.
func (f Func) Step(level Level, done, total int, format string, args ...any) {
	if f == nil {
		return
	}
	f(Event{Message: fmt.Sprintf(format, args...), Level: level, Done: done, Total: total})
}

// Recorder collects events in memory.
type Recorder struct {
	Events []Event
}

// Func returns a Func appending to the recorder.
func (r *Recorder) Func() Func {
	return func(e Event) {
		r.Events = append(r.Events, e)
	}
}

// Count returns how many recorded events have the given level.
func (r *Recorder) Count(level Level) int {
	n := 0
	for _, e := range r.Events {
		if e.Level == level {
			n++
		}
	}
	return n
}
