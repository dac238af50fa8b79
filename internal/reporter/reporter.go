// Package reporter formats ranking snapshots for terminal output.
package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/league-rankings/internal/models"
)

// Supported output formats
const (
	FormatClassic = "classic"
	FormatTable   = "table"
)

// Reporter writes one formatted block per matchday snapshot,
// separating consecutive blocks with a single blank line and leaving
// no trailing blank after the last one.
type Reporter struct {
	w      io.Writer
	format string
	blocks int
}

// New creates a reporter writing to w in the given format
func New(w io.Writer, format string) *Reporter {
	return &Reporter{w: w, format: format}
}

// Format returns the configured output format
func (r *Reporter) Format() string {
	return r.format
}

// Report writes the block for one snapshot. A snapshot with no entries
// produces no output.
func (r *Reporter) Report(snapshot models.RankingSnapshot) error {
	if len(snapshot.Entries) == 0 {
		return nil
	}

	var block string
	switch r.format {
	case FormatTable:
		block = GenerateTableBlock(snapshot)
	default:
		block = GenerateClassicBlock(snapshot)
	}

	if r.blocks > 0 {
		block = "\n" + block
	}
	r.blocks++

	_, err := io.WriteString(r.w, block)
	return err
}

// GenerateClassicBlock formats a snapshot as a matchday header followed
// by one "{team}, {points} pt(s)" line per entry
func GenerateClassicBlock(snapshot models.RankingSnapshot) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Matchday %d\n", snapshot.Matchday))
	for _, entry := range snapshot.Entries {
		builder.WriteString(fmt.Sprintf("%s, %d pt%s\n",
			entry.Standing.Name, entry.Standing.Points, pluralize(entry.Standing.Points)))
	}
	return builder.String()
}

// GenerateTableBlock formats a snapshot with the full standing columns
func GenerateTableBlock(snapshot models.RankingSnapshot) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Matchday %d\n", snapshot.Matchday))
	builder.WriteString(fmt.Sprintf("%-24s %2s %2s %2s %2s %3s %3s %3s %3s\n",
		"Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"))
	for _, entry := range snapshot.Entries {
		s := entry.Standing
		builder.WriteString(fmt.Sprintf("%-24s %2d %2d %2d %2d %3d %3d %3d %3d\n",
			s.Name, s.Played, s.Wins, s.Draws, s.Losses,
			s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.Points))
	}
	return builder.String()
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
