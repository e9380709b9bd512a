package session

import "unicode"

// EventKind classifies a key event fed into the engine.
type EventKind int

const (
	// EventAppend adds a character to the typed buffer.
	EventAppend EventKind = iota + 1
	// EventBackspace removes the last typed character.
	EventBackspace
	// EventSubmit finalizes the typed buffer as the answer for the active word.
	EventSubmit
)

// Event is one classified keystroke.
type Event struct {
	Kind EventKind
	Char rune
}

// Append returns an event appending r.
func Append(r rune) Event {
	return Event{Kind: EventAppend, Char: r}
}

// Backspace returns a backspace event.
func Backspace() Event {
	return Event{Kind: EventBackspace}
}

// Submit returns a submit event.
func Submit() Event {
	return Event{Kind: EventSubmit}
}

// valid reports whether the engine understands the event.
func (ev Event) valid() bool {
	switch ev.Kind {
	case EventBackspace, EventSubmit:
		return true
	case EventAppend:
		return unicode.IsPrint(ev.Char) && !unicode.IsSpace(ev.Char)
	default:
		return false
	}
}
