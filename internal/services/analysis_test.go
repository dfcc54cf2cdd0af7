package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"file-histogram/internal/histogram"
	"file-histogram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newTestService() (*AnalysisService, *models.AnalysisRepository) {
	repo := models.NewAnalysisRepository()
	return NewAnalysisService(repo, nil), repo
}

func TestAnalyzeFile(t *testing.T) {
	service, repo := newTestService()
	data := []byte{0x00, 0xff, 0xff, 0x10, 0xff}
	path := writeTempFile(t, "sample.bin", data)

	analysis, err := service.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, path, analysis.Path)
	assert.Equal(t, uint64(len(data)), analysis.Histogram.Total())
	assert.Equal(t, uint64(3), analysis.Histogram[0xff])
	assert.Equal(t, uint64(5), analysis.Summary.Total)
	assert.Equal(t, 3, analysis.Summary.Unique)
	assert.Equal(t, uint64(3), analysis.Summary.Peak)
	assert.Equal(t, byte(0xff), analysis.Summary.PeakByte)

	state := repo.State()
	assert.Equal(t, models.StageLoaded, state.Stage)
	assert.Same(t, analysis, state.Analysis)
}

func TestAnalyzeFileEmpty(t *testing.T) {
	service, _ := newTestService()
	path := writeTempFile(t, "empty.bin", nil)

	analysis, err := service.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, histogram.Histogram{}, analysis.Histogram)
	assert.Equal(t, uint64(0), analysis.Summary.Total)
	assert.Equal(t, 0, analysis.Summary.Unique)
}

func TestAnalyzeSameFileTwice(t *testing.T) {
	service, _ := newTestService()
	path := writeTempFile(t, "twice.bin", bytes.Repeat([]byte("histogram"), 1000))

	first, err := service.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)
	second, err := service.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first.Histogram, second.Histogram)
	assert.Equal(t, first.Summary, second.Summary)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAnalyzeFileMissing(t *testing.T) {
	service, repo := newTestService()
	good := writeTempFile(t, "good.bin", []byte("ok"))
	_, err := service.AnalyzeFile(context.Background(), good)
	require.NoError(t, err)

	missing := filepath.Join(t.TempDir(), "missing.bin")
	analysis, err := service.AnalyzeFile(context.Background(), missing)

	require.Error(t, err)
	assert.Nil(t, analysis)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, missing, readErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), missing)

	state := repo.State()
	assert.Equal(t, models.StageFailed, state.Stage)
	assert.Nil(t, state.Analysis)
	assert.Equal(t, good, state.Path)
	assert.Contains(t, state.Error, "Error reading file: ")
}

func TestAnalyzeFileCancelledContext(t *testing.T) {
	service, repo := newTestService()
	path := writeTempFile(t, "cancel.bin", []byte("abc"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.AnalyzeFile(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.StageNoFile, repo.State().Stage)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestAnalyzeReader(t *testing.T) {
	service, repo := newTestService()
	reader := &closeTracker{Reader: bytes.NewReader([]byte("aab"))}

	analysis, err := service.AnalyzeReader(context.Background(), "/virtual/aab.txt", reader)
	require.NoError(t, err)

	assert.True(t, reader.closed)
	assert.Equal(t, uint64(2), analysis.Histogram['a'])
	assert.Equal(t, uint64(1), analysis.Histogram['b'])
	assert.Equal(t, "/virtual/aab.txt", repo.State().Path)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device not ready")
}

func TestAnalyzeReaderFailure(t *testing.T) {
	service, repo := newTestService()

	_, err := service.AnalyzeReader(context.Background(), "/dev/broken", failingReader{})

	require.Error(t, err)
	assert.Equal(t, "/dev/broken: device not ready", err.Error())
	assert.Equal(t, "Error reading file: /dev/broken: device not ready", repo.State().Error)
}

func TestShutdownClearsRepository(t *testing.T) {
	service, repo := newTestService()
	path := writeTempFile(t, "s.bin", []byte("x"))
	_, err := service.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	service.Shutdown()

	assert.Equal(t, models.StageNoFile, repo.State().Stage)
	assert.Same(t, repo, service.Repository())
}
