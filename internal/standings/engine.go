package standings

import (
	"github.com/yourusername/league-rankings/internal/models"
)

// SnapshotSize is the number of leading teams captured after each
// matchday, fixed by the competition rules
const SnapshotSize = 3

// Engine replays matchdays in order, folding each into the league
// table and deriving a ranking snapshot. The matchday grouping is taken
// as given; the engine never infers boundaries itself.
type Engine struct {
	table    *Table
	matchday int
}

// NewEngine creates a standings engine with an empty table
func NewEngine() *Engine {
	return &Engine{table: NewTable()}
}

// ApplyMatchday folds one matchday of results into the table and
// returns the snapshot of the leading teams. An empty matchday leaves
// the table unchanged but still advances the matchday counter and
// produces a snapshot.
func (e *Engine) ApplyMatchday(matches []models.MatchResult) models.RankingSnapshot {
	for _, m := range matches {
		e.table.Apply(m)
	}
	e.matchday++

	ranked := e.table.Ranked()
	top := SnapshotSize
	if len(ranked) < top {
		top = len(ranked)
	}

	entries := make([]models.SnapshotEntry, 0, top)
	for i := 0; i < top; i++ {
		entries = append(entries, models.SnapshotEntry{
			Rank:     i + 1,
			Standing: ranked[i],
		})
	}

	return models.RankingSnapshot{
		Matchday: e.matchday,
		Entries:  entries,
	}
}

// Table returns the underlying league table
func (e *Engine) Table() *Table {
	return e.table
}

// Matchday returns the number of matchdays applied so far
func (e *Engine) Matchday() int {
	return e.matchday
}
