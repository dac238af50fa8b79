package service

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/league-rankings/internal/logger"
	"github.com/yourusername/league-rankings/internal/models"
	"github.com/yourusername/league-rankings/internal/parser"
	"github.com/yourusername/league-rankings/internal/reporter"
	"github.com/yourusername/league-rankings/internal/standings"
)

// Pipeline handles the match result processing workflow
type Pipeline struct {
	engine   *standings.Engine
	reporter *reporter.Reporter
	baseLog  *logrus.Logger
	summary  *RunSummary
}

// NewPipeline creates a new processing pipeline
func NewPipeline(engine *standings.Engine, rep *reporter.Reporter, baseLog *logrus.Logger) *Pipeline {
	if baseLog == nil {
		baseLog = logrus.New()
	}

	return &Pipeline{
		engine:   engine,
		reporter: rep,
		baseLog:  baseLog,
		summary:  NewRunSummary(),
	}
}

// Run consumes match results from r until EOF or the first malformed line.
// Matchdays completed before a failure have already been reported, so a
// non-nil error never retracts output written earlier in the pass.
func (p *Pipeline) Run(r io.Reader) (*RunSummary, error) {
	p.summary.Reset()
	runLog := logger.NewRunLogger(p.baseLog, uuid.New().String())
	runLog.LogRunStart(p.reporter.Format())

	grouper := parser.NewGrouper()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		p.summary.RecordLine()

		// Blank lines close the current matchday
		if parser.IsDelimiter(line) {
			if day, ok := grouper.Close(); ok {
				if err := p.applyMatchday(day, runLog); err != nil {
					return p.summary, err
				}
			}
			continue
		}

		match, err := parser.ParseLine(line, lineNum)
		if err != nil {
			p.summary.RecordError()
			runLog.LogParseFailure(lineNum, line, err)
			return p.summary, err
		}
		p.summary.RecordMatch()

		// A repeated team means the previous matchday is complete
		if day, ok := grouper.Add(match); ok {
			if err := p.applyMatchday(day, runLog); err != nil {
				return p.summary, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		p.summary.RecordError()
		return p.summary, models.NewInputError("", err)
	}

	// Whatever is still buffered forms the final matchday
	if day, ok := grouper.Flush(); ok {
		if err := p.applyMatchday(day, runLog); err != nil {
			return p.summary, err
		}
	}

	p.summary.Complete(p.engine.Table().Size())
	runLog.LogRunComplete(p.summary.Lines, p.summary.Matches, p.summary.Matchdays, p.summary.Teams, p.summary.Duration)

	return p.summary, nil
}

// Check parses and groups the input without ranking or reporting anything.
// It surfaces the same errors Run would, which makes it a dry run for
// verifying a results file before publishing standings from it.
func (p *Pipeline) Check(r io.Reader) (*RunSummary, error) {
	p.summary.Reset()
	runLog := logger.NewRunLogger(p.baseLog, uuid.New().String())

	grouper := parser.NewGrouper()
	scanner := bufio.NewScanner(r)
	teams := make(map[string]bool)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		p.summary.RecordLine()

		if parser.IsDelimiter(line) {
			if _, ok := grouper.Close(); ok {
				p.summary.RecordMatchday()
			}
			continue
		}

		match, err := parser.ParseLine(line, lineNum)
		if err != nil {
			p.summary.RecordError()
			runLog.LogParseFailure(lineNum, line, err)
			return p.summary, err
		}
		p.summary.RecordMatch()
		teams[match.HomeTeam] = true
		teams[match.AwayTeam] = true

		if _, ok := grouper.Add(match); ok {
			p.summary.RecordMatchday()
		}
	}

	if err := scanner.Err(); err != nil {
		p.summary.RecordError()
		return p.summary, models.NewInputError("", err)
	}

	if _, ok := grouper.Flush(); ok {
		p.summary.RecordMatchday()
	}

	p.summary.Complete(len(teams))

	return p.summary, nil
}

// applyMatchday ranks one completed matchday and reports its snapshot
func (p *Pipeline) applyMatchday(day []models.MatchResult, runLog *logger.RunLogger) error {
	snapshot := p.engine.ApplyMatchday(day)
	p.summary.RecordMatchday()
	runLog.LogMatchdayApplied(snapshot.Matchday, len(day), p.engine.Table().Size(), len(snapshot.Entries))

	if err := p.reporter.Report(snapshot); err != nil {
		p.summary.RecordError()
		return fmt.Errorf("failed to write matchday %d report: %w", snapshot.Matchday, err)
	}

	return nil
}

// Summary returns the counters from the most recent run
func (p *Pipeline) Summary() *RunSummary {
	return p.summary
}
