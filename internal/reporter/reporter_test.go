package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/league-rankings/internal/models"
)

func snapshot(matchday int, teams ...models.TeamStanding) models.RankingSnapshot {
	entries := make([]models.SnapshotEntry, 0, len(teams))
	for i, team := range teams {
		entries = append(entries, models.SnapshotEntry{Rank: i + 1, Standing: team})
	}
	return models.RankingSnapshot{Matchday: matchday, Entries: entries}
}

// TestClassicBlockPluralization tests the "pt" vs "pts" suffix rule
func TestClassicBlockPluralization(t *testing.T) {
	block := GenerateClassicBlock(snapshot(1,
		models.TeamStanding{Name: "Aptos FC", Points: 3},
		models.TeamStanding{Name: "San Jose Earthquakes", Points: 1},
		models.TeamStanding{Name: "Monterey United", Points: 0},
	))

	want := "Matchday 1\n" +
		"Aptos FC, 3 pts\n" +
		"San Jose Earthquakes, 1 pt\n" +
		"Monterey United, 0 pts\n"
	assert.Equal(t, want, block)
}

// TestReportSeparatesBlocksWithBlankLine tests matchday block layout
func TestReportSeparatesBlocksWithBlankLine(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, FormatClassic)

	require.NoError(t, r.Report(snapshot(1, models.TeamStanding{Name: "Aptos FC", Points: 3})))
	require.NoError(t, r.Report(snapshot(2, models.TeamStanding{Name: "Aptos FC", Points: 6})))

	want := "Matchday 1\n" +
		"Aptos FC, 3 pts\n" +
		"\n" +
		"Matchday 2\n" +
		"Aptos FC, 6 pts\n"
	assert.Equal(t, want, out.String())
	assert.False(t, strings.HasSuffix(out.String(), "\n\n"), "no trailing blank line after the last block")
}

// TestReportSkipsEmptySnapshot tests that an entry-less snapshot
// produces no block and no separator
func TestReportSkipsEmptySnapshot(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, FormatClassic)

	require.NoError(t, r.Report(snapshot(1)))
	assert.Zero(t, out.Len())

	require.NoError(t, r.Report(snapshot(2, models.TeamStanding{Name: "Aptos FC", Points: 3})))
	assert.Equal(t, "Matchday 2\nAptos FC, 3 pts\n", out.String())
}

// TestTableBlockColumns tests the full-stats table format
func TestTableBlockColumns(t *testing.T) {
	block := GenerateTableBlock(snapshot(3, models.TeamStanding{
		Name: "Felton Lumberjacks", Played: 3, Wins: 2, Draws: 0, Losses: 1,
		GoalsFor: 7, GoalsAgainst: 3, GoalDifference: 4, Points: 6,
	}))

	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Matchday 3", lines[0])
	assert.Contains(t, lines[1], "Team")
	assert.Contains(t, lines[1], "Pts")
	assert.Contains(t, lines[2], "Felton Lumberjacks")
	assert.Contains(t, lines[2], "7")
	assert.Contains(t, lines[2], "6")
}

// TestReporterTableFormat tests format selection through the reporter
func TestReporterTableFormat(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, FormatTable)

	require.NoError(t, r.Report(snapshot(1, models.TeamStanding{Name: "Aptos FC", Points: 3})))
	assert.Contains(t, out.String(), "Team")
	assert.NotContains(t, out.String(), ", 3 pts")
}
