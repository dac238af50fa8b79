package parser

import (
	"github.com/yourusername/league-rankings/internal/models"
)

// Grouper batches parsed matches into matchdays. Two rules close the
// current matchday: an explicit delimiter line in the input, and a
// match naming a team that already played in the current matchday
// (every team plays at most once per matchday).
type Grouper struct {
	current []models.MatchResult
	played  map[string]bool
	started bool
}

// NewGrouper creates an empty grouper
func NewGrouper() *Grouper {
	return &Grouper{played: make(map[string]bool)}
}

// Add appends a match to the current matchday. If either of its teams
// has already played in that matchday, the completed matchday is
// returned and a new one begins with the given match.
func (g *Grouper) Add(m models.MatchResult) ([]models.MatchResult, bool) {
	g.started = true

	var closed []models.MatchResult
	closedDay := false
	if g.played[m.HomeTeam] || g.played[m.AwayTeam] {
		closed = g.current
		closedDay = true
		g.reset()
	}

	g.current = append(g.current, m)
	g.played[m.HomeTeam] = true
	g.played[m.AwayTeam] = true

	return closed, closedDay
}

// Close handles an explicit delimiter line. Delimiters seen before the
// first match are swallowed; consecutive delimiters yield empty
// matchdays.
func (g *Grouper) Close() ([]models.MatchResult, bool) {
	if !g.started {
		return nil, false
	}
	day := g.current
	g.reset()
	return day, true
}

// Flush returns the final matchday at end of input. A trailing
// delimiter leaves nothing to flush, so no duplicate matchday is
// emitted.
func (g *Grouper) Flush() ([]models.MatchResult, bool) {
	if len(g.current) == 0 {
		return nil, false
	}
	day := g.current
	g.reset()
	return day, true
}

// Pending returns the number of matches in the open matchday
func (g *Grouper) Pending() int {
	return len(g.current)
}

func (g *Grouper) reset() {
	g.current = nil
	g.played = make(map[string]bool)
}
