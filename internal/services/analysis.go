package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"file-histogram/internal/histogram"
	"file-histogram/internal/logger"
	"file-histogram/internal/models"

	"github.com/google/uuid"
)

// ReadError reports that the selected file could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// AnalysisService reads files and stores their byte histograms
type AnalysisService struct {
	repository *models.AnalysisRepository
	logger     logger.Logger
	readFile   func(string) ([]byte, error)
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(repo *models.AnalysisRepository, log logger.Logger) *AnalysisService {
	if log == nil {
		log = logger.Nop{}
	}
	return &AnalysisService{
		repository: repo,
		logger:     log,
		readFile:   os.ReadFile,
	}
}

// AnalyzeFile reads the whole file at path and counts its bytes. The result,
// or the failure, replaces whatever the repository held before.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	data, err := s.readFile(path)
	if err != nil {
		return nil, s.fail(path, err)
	}

	return s.store(ctx, path, data, startTime)
}

// AnalyzeReader counts the bytes of an already opened file. The reader is
// closed when it implements io.Closer.
func (s *AnalysisService) AnalyzeReader(ctx context.Context, path string, r io.Reader) (*models.Analysis, error) {
	if closer, ok := r.(io.Closer); ok {
		defer closer.Close()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, s.fail(path, err)
	}

	return s.store(ctx, path, data, startTime)
}

// Repository returns the backing repository
func (s *AnalysisService) Repository() *models.AnalysisRepository {
	return s.repository
}

func (s *AnalysisService) store(ctx context.Context, path string, data []byte, startTime time.Time) (*models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	h := histogram.Count(data)
	analysis := &models.Analysis{
		ID:        uuid.NewString(),
		Path:      path,
		Histogram: h,
		Summary:   h.Summarize(),
		LoadedAt:  startTime,
		Duration:  time.Since(startTime),
	}

	s.repository.SetAnalysis(analysis)

	s.logger.Info("File analyzed", map[string]interface{}{
		"analysis_id":  analysis.ID,
		"path":         path,
		"total_bytes":  analysis.Summary.Total,
		"unique_bytes": analysis.Summary.Unique,
		"peak":         analysis.Summary.Peak,
		"entropy":      analysis.Summary.Entropy,
		"duration_ms":  analysis.Duration.Milliseconds(),
	})

	return analysis, nil
}

func (s *AnalysisService) fail(path string, err error) error {
	readErr := &ReadError{Path: path, Err: err}
	s.repository.SetError(readErr)
	s.logger.Error("File read failed", readErr, map[string]interface{}{
		"path": path,
	})
	return readErr
}

// Shutdown drops the current analysis
func (s *AnalysisService) Shutdown() {
	s.repository.Shutdown()
}
