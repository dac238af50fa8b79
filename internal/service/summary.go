package service

import (
	"fmt"
	"sync"
	"time"
)

// RunSummary tracks counters for a single pass over an input stream
type RunSummary struct {
	mu        sync.RWMutex
	StartTime time.Time
	Duration  time.Duration
	Lines     int
	Matches   int
	Matchdays int
	Teams     int
	Errors    int
}

// NewRunSummary creates a summary with the clock already running
func NewRunSummary() *RunSummary {
	return &RunSummary{
		StartTime: time.Now(),
	}
}

// Reset clears all counters and restarts the clock
func (s *RunSummary) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartTime = time.Now()
	s.Duration = 0
	s.Lines = 0
	s.Matches = 0
	s.Matchdays = 0
	s.Teams = 0
	s.Errors = 0
}

// RecordLine counts one input line, delimiter or not
func (s *RunSummary) RecordLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lines++
}

// RecordMatch counts one successfully parsed match result
func (s *RunSummary) RecordMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Matches++
}

// RecordMatchday counts one completed matchday
func (s *RunSummary) RecordMatchday() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Matchdays++
}

// RecordError counts one failure
func (s *RunSummary) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors++
}

// Complete stops the clock and records the final team count
func (s *RunSummary) Complete(teams int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Teams = teams
	s.Duration = time.Since(s.StartTime)
}

// String returns a human-readable summary of the run
func (s *RunSummary) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fmt.Sprintf("RunSummary{Lines=%d, Matches=%d, Matchdays=%d, Teams=%d, Errors=%d, Duration=%v}",
		s.Lines, s.Matches, s.Matchdays, s.Teams, s.Errors, s.Duration)
}
