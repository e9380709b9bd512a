package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/typer/internal/model"
	"github.com/verte-zerg/typer/internal/store"
)

// MissedWordsLimit caps the missed-word table.
const MissedWordsLimit = 15

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions []model.SessionAggregate
	Missed   []model.WordAggregate
	Totals   Totals
	Window   int
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	aggs, err := st.ListWordAggregates(ctx, sessionIDs(sessions))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Sessions: sessions,
		Missed:   TopMissedWords(aggs, MissedWordsLimit),
		Totals:   Summarize(sessions),
		Window:   cfg.Window,
	}, nil
}

// WriteReport prints the full plain-text report sized to width columns.
func WriteReport(w io.Writer, r Report, width int) error {
	if err := RenderSummary(w, r.Sessions); err != nil {
		return err
	}
	if len(r.Sessions) == 0 {
		return nil
	}
	if err := RenderCurves(w, r.Sessions, r.Window, width); err != nil {
		return err
	}
	if err := RenderSessionTable(w, r.Sessions); err != nil {
		return err
	}
	return RenderMissedWords(w, r.Missed)
}

func sessionIDs(sessions []model.SessionAggregate) []int64 {
	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.SessionID
	}
	return ids
}
