// Package logger provides run-specific logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// RunLogger provides dedicated logging for standings run events.
type RunLogger struct {
	*logrus.Entry
}

// NewRunLogger creates a new run logger. Every entry carries the run ID
// so concurrent invocations stay distinguishable in aggregated logs.
func NewRunLogger(baseLogger *logrus.Logger, runID string) *RunLogger {
	return &RunLogger{
		Entry: baseLogger.WithFields(logrus.Fields{
			"component": "pipeline",
			"run_id":    runID,
		}),
	}
}

// LogRunStart logs the beginning of a standings run.
func (rl *RunLogger) LogRunStart(format string) {
	rl.WithFields(logrus.Fields{
		"format": format,
	}).Info("Standings run started")
}

// LogMatchdayApplied logs one applied matchday.
func (rl *RunLogger) LogMatchdayApplied(matchday, matches, teams, leaders int) {
	rl.WithFields(logrus.Fields{
		"matchday": matchday,
		"matches":  matches,
		"teams":    teams,
		"leaders":  leaders,
	}).Debug("Matchday applied")
}

// LogParseFailure logs the malformed line that aborts a run.
func (rl *RunLogger) LogParseFailure(lineNum int, line string, err error) {
	rl.WithFields(logrus.Fields{
		"line_number": lineNum,
		"line":        line,
	}).WithError(err).Error("Malformed input line, aborting run")
}

// LogRunComplete logs run completion statistics.
func (rl *RunLogger) LogRunComplete(lines, matches, matchdays, teams int, duration time.Duration) {
	rl.WithFields(logrus.Fields{
		"lines":       lines,
		"matches":     matches,
		"matchdays":   matchdays,
		"teams":       teams,
		"duration_ms": float64(duration.Microseconds()) / 1000.0,
	}).Info("Standings run complete")
}
