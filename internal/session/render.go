package session

// Status is the display status of a word.
type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusCorrect
	StatusIncorrect
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	default:
		return "pending"
	}
}

// VisibleRows is the height of the sliding row window.
const VisibleRows = 2

// RenderWord is one word positioned for display.
type RenderWord struct {
	Index  int
	Text   string
	X      int
	Status Status
}

// RenderState is a render-agnostic snapshot of the engine for the presentation layer.
type RenderState struct {
	// Rows holds the current row followed by the next one, when present.
	Rows     [][]RenderWord
	FirstRow int
	Typed    string
	Cursor   int
	Current  int
	Total    int
	Correct  int
	Wrong    int
	State    State
	MaxWidth int
}

// RenderState builds the snapshot for the current row window.
func (e *Engine) RenderState() RenderState {
	rs := RenderState{
		FirstRow: e.row,
		Typed:    string(e.typed),
		Cursor:   e.cursor,
		Current:  e.current,
		Total:    len(e.words),
		State:    e.state,
		MaxWidth: e.layout.MaxWidth,
	}
	for _, rec := range e.records {
		if rec.Correct {
			rs.Correct++
		} else {
			rs.Wrong++
		}
	}
	for row := e.row; row < e.row+VisibleRows && row < e.layout.Rows; row++ {
		start, end := e.layout.RowSpan(row)
		words := make([]RenderWord, 0, end-start)
		for i := start; i < end; i++ {
			words = append(words, RenderWord{
				Index:  i,
				Text:   e.words[i],
				X:      e.layout.Placements[i].X,
				Status: e.status(i),
			})
		}
		rs.Rows = append(rs.Rows, words)
	}
	return rs
}

func (e *Engine) status(i int) Status {
	switch {
	case i < e.current:
		if e.records[i].Correct {
			return StatusCorrect
		}
		return StatusIncorrect
	case i == e.current && e.state == InProgress:
		return StatusActive
	default:
		return StatusPending
	}
}
