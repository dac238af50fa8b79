// Package parser turns raw result lines into match records and groups
// them into matchdays.
package parser

import (
	"strconv"
	"strings"

	"github.com/yourusername/league-rankings/internal/models"
)

// ParseLine parses one result line of the form
//
//	{home name} {home goals}, {away name} {away goals}
//
// Team names may contain spaces; the goal count is the last
// space-delimited token on each side. Failures carry the line number
// and offending text via *models.ParseError.
func ParseLine(line string, lineNum int) (models.MatchResult, error) {
	sides := strings.Split(line, ",")
	if len(sides) != 2 {
		return models.MatchResult{}, models.NewParseError(lineNum, line, models.ErrMissingSeparator.Error(), models.ErrMissingSeparator)
	}

	homeTeam, homeGoals, err := parseSide(sides[0])
	if err != nil {
		return models.MatchResult{}, models.NewParseError(lineNum, line, "home side: "+err.Error(), err)
	}

	awayTeam, awayGoals, err := parseSide(sides[1])
	if err != nil {
		return models.MatchResult{}, models.NewParseError(lineNum, line, "away side: "+err.Error(), err)
	}

	if homeTeam == awayTeam {
		return models.MatchResult{}, models.NewParseError(lineNum, line, models.ErrSameTeam.Error(), models.ErrSameTeam)
	}

	return models.MatchResult{
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}, nil
}

// parseSide splits "{team name} {goals}" into its parts
func parseSide(side string) (string, int, error) {
	side = strings.TrimSpace(side)

	cut := strings.LastIndex(side, " ")
	if cut < 0 {
		// A lone token is a bare goal count when numeric, otherwise a
		// bare team name
		if _, err := strconv.Atoi(side); err == nil {
			return "", 0, models.ErrEmptyTeamName
		}
		return "", 0, models.ErrMissingGoals
	}

	name := strings.TrimSpace(side[:cut])

	goals, err := strconv.Atoi(side[cut+1:])
	if err != nil {
		return "", 0, models.ErrInvalidGoals
	}
	if goals < 0 {
		return "", 0, models.ErrNegativeGoals
	}

	return name, goals, nil
}

// IsDelimiter reports whether a raw input line is an explicit matchday
// delimiter (blank once trimmed)
func IsDelimiter(line string) bool {
	return strings.TrimSpace(line) == ""
}
