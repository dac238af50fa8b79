// Package standings implements the league table and the per-matchday
// ranking engine.
package standings

import (
	"sort"

	"github.com/yourusername/league-rankings/internal/models"
)

// Table holds the accumulated standing of every team seen so far. It
// lives for the whole run and is only ever mutated through Apply.
type Table struct {
	teams map[string]*models.TeamStanding
}

// NewTable creates an empty league table
func NewTable() *Table {
	return &Table{teams: make(map[string]*models.TeamStanding)}
}

// Apply folds one match result into both teams' standings, inserting
// zeroed entries for teams seen for the first time
func (t *Table) Apply(m models.MatchResult) {
	home := t.standing(m.HomeTeam)
	away := t.standing(m.AwayTeam)

	switch {
	case m.HomeWin():
		home.RecordWin(m.HomeGoals, m.AwayGoals)
		away.RecordLoss(m.AwayGoals, m.HomeGoals)
	case m.AwayWin():
		away.RecordWin(m.AwayGoals, m.HomeGoals)
		home.RecordLoss(m.HomeGoals, m.AwayGoals)
	default:
		home.RecordDraw(m.HomeGoals, m.AwayGoals)
		away.RecordDraw(m.AwayGoals, m.HomeGoals)
	}
}

// Ranked returns value copies of every standing, ordered by points,
// goal difference, goals scored, and finally team name. The ordering is
// total: no two entries ever compare equal.
func (t *Table) Ranked() []models.TeamStanding {
	ranked := make([]models.TeamStanding, 0, len(t.teams))
	for _, s := range t.teams {
		ranked = append(ranked, *s)
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})

	return ranked
}

// Standing returns a copy of one team's standing
func (t *Table) Standing(name string) (models.TeamStanding, bool) {
	s, ok := t.teams[name]
	if !ok {
		return models.TeamStanding{}, false
	}
	return *s, true
}

// Size returns the number of teams in the table
func (t *Table) Size() int {
	return len(t.teams)
}

func (t *Table) standing(name string) *models.TeamStanding {
	s, ok := t.teams[name]
	if !ok {
		s = &models.TeamStanding{Name: name}
		t.teams[name] = s
	}
	return s
}
