package models

// Points awarded per match outcome, fixed by the competition rules
const (
	PointsPerWin  = 3
	PointsPerDraw = 1
	PointsPerLoss = 0
)

// TeamStanding represents a team's accumulated record in the league table
type TeamStanding struct {
	Name           string `json:"name" validate:"required"`
	Played         int    `json:"played" validate:"gte=0"`
	Wins           int    `json:"wins" validate:"gte=0"`
	Draws          int    `json:"draws" validate:"gte=0"`
	Losses         int    `json:"losses" validate:"gte=0"`
	GoalsFor       int    `json:"goals_for" validate:"gte=0"`
	GoalsAgainst   int    `json:"goals_against" validate:"gte=0"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points" validate:"gte=0"`
}

// RecordWin credits a won match and its goals
func (s *TeamStanding) RecordWin(goalsFor, goalsAgainst int) {
	s.Wins++
	s.Points += PointsPerWin
	s.recordMatch(goalsFor, goalsAgainst)
}

// RecordDraw credits a drawn match and its goals
func (s *TeamStanding) RecordDraw(goalsFor, goalsAgainst int) {
	s.Draws++
	s.Points += PointsPerDraw
	s.recordMatch(goalsFor, goalsAgainst)
}

// RecordLoss credits a lost match and its goals
func (s *TeamStanding) RecordLoss(goalsFor, goalsAgainst int) {
	s.Losses++
	s.Points += PointsPerLoss
	s.recordMatch(goalsFor, goalsAgainst)
}

// recordMatch updates the shared counters, keeping GoalDifference
// equal to GoalsFor minus GoalsAgainst
func (s *TeamStanding) recordMatch(goalsFor, goalsAgainst int) {
	s.Played++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}
