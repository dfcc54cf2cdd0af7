package models

import (
	"sync"
	"time"

	"file-histogram/internal/histogram"
)

// Stage is the position in the selection lifecycle
type Stage int

const (
	StageNoFile Stage = iota
	StageLoaded
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageLoaded:
		return "loaded"
	case StageFailed:
		return "failed"
	default:
		return "no_file"
	}
}

// Analysis is the result of counting one file
type Analysis struct {
	ID        string
	Path      string
	Histogram histogram.Histogram
	Summary   histogram.Summary
	LoadedAt  time.Time
	Duration  time.Duration
}

// State is a snapshot of the repository
type State struct {
	Stage    Stage
	Path     string
	Analysis *Analysis
	Error    string
}

// HasHistogram reports whether a histogram is available for drawing
func (s State) HasHistogram() bool {
	return s.Analysis != nil
}

// AnalysisRepository holds the currently selected file and its histogram.
// Every selection overwrites the previous one.
type AnalysisRepository struct {
	mu       sync.RWMutex
	path     string
	analysis *Analysis
	errMsg   string
}

// NewAnalysisRepository creates an empty repository in the no-file stage
func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{}
}

// SetAnalysis stores a successful analysis and clears any error
func (r *AnalysisRepository) SetAnalysis(a *Analysis) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.path = a.Path
	r.analysis = a
	r.errMsg = ""
}

// SetError records a failed read. The histogram is dropped while the last
// successfully selected path is kept.
func (r *AnalysisRepository) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.analysis = nil
	r.errMsg = FormatReadError(err)
}

// FormatReadError renders the inline message for a failed read
func FormatReadError(err error) string {
	if err == nil {
		return ""
	}
	return "Error reading file: " + err.Error()
}

// State returns a snapshot
func (r *AnalysisRepository) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := State{
		Path:     r.path,
		Analysis: r.analysis,
		Error:    r.errMsg,
	}

	switch {
	case r.errMsg != "":
		state.Stage = StageFailed
	case r.analysis != nil:
		state.Stage = StageLoaded
	default:
		state.Stage = StageNoFile
	}

	return state
}

// Current returns the current analysis or nil
func (r *AnalysisRepository) Current() *Analysis {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.analysis
}

// Reset returns to the no-file stage
func (r *AnalysisRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.path = ""
	r.analysis = nil
	r.errMsg = ""
}

// Shutdown releases all state
func (r *AnalysisRepository) Shutdown() {
	r.Reset()
}
