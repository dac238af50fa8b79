package models

// MatchResult represents a single played match between two teams
type MatchResult struct {
	HomeTeam  string `json:"home_team" validate:"required"`
	AwayTeam  string `json:"away_team" validate:"required,nefield=HomeTeam"`
	HomeGoals int    `json:"home_goals" validate:"gte=0"`
	AwayGoals int    `json:"away_goals" validate:"gte=0"`
}

// IsDraw checks if the match ended level
func (m *MatchResult) IsDraw() bool {
	return m.HomeGoals == m.AwayGoals
}

// HomeWin checks if the home side won
func (m *MatchResult) HomeWin() bool {
	return m.HomeGoals > m.AwayGoals
}

// AwayWin checks if the away side won
func (m *MatchResult) AwayWin() bool {
	return m.AwayGoals > m.HomeGoals
}
