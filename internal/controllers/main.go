package controllers

import (
	"context"
	"errors"
	"fmt"

	"file-histogram/internal/logger"
	"file-histogram/internal/models"
	"file-histogram/internal/services"
	"file-histogram/internal/views"

	"fyne.io/fyne/v2"
)

// MainController connects the view to the analysis service. All methods run
// on the UI goroutine and the file read blocks it.
type MainController struct {
	analysisService *services.AnalysisService
	repository      *models.AnalysisRepository
	mainView        *views.MainView
	logger          logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewMainController creates a new main controller
func NewMainController(
	ctx context.Context,
	analysisService *services.AnalysisService,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.Nop{}
	}
	ctx, cancel := context.WithCancel(ctx)
	return &MainController{
		analysisService: analysisService,
		repository:      analysisService.Repository(),
		logger:          log,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.refreshView()
}

// ChooseFile opens the file dialog and analyzes the picked file
func (mc *MainController) ChooseFile() {
	if mc.mainView == nil {
		mc.logger.Warning("File dialog requested without a view", nil)
		return
	}
	mc.mainView.ShowFileDialog(mc.onFileChosen)
}

// onFileChosen handles the dialog result; a nil reader means cancelled
func (mc *MainController) onFileChosen(reader fyne.URIReadCloser, err error) {
	if err != nil {
		mc.handleReadError(err)
		return
	}
	if reader == nil {
		mc.logger.Debug("File selection cancelled", nil)
		return
	}

	path := reader.URI().Path()
	if _, err := mc.analysisService.AnalyzeReader(mc.ctx, path, reader); err != nil {
		mc.handleReadError(err)
		return
	}
	mc.refreshView()
}

// LoadPath analyzes the file at path, used for drops and tests
func (mc *MainController) LoadPath(path string) error {
	_, err := mc.analysisService.AnalyzeFile(mc.ctx, path)
	if err != nil {
		mc.handleReadError(err)
		return err
	}
	mc.refreshView()
	return nil
}

// Shown when a drop carries no file:// URI.
const (
	DropInfoTitle   = "Nothing to analyze"
	DropInfoMessage = "Only local files can be analyzed."
)

// LoadURIs analyzes the first dropped file. Only one file is shown at a time.
func (mc *MainController) LoadURIs(uris []fyne.URI) {
	for _, uri := range uris {
		if uri == nil || uri.Scheme() != "file" {
			continue
		}
		if len(uris) > 1 {
			mc.logger.Info("Multiple files dropped, analyzing the first", map[string]interface{}{
				"count": len(uris),
			})
		}
		_ = mc.LoadPath(uri.Path())
		return
	}
	if len(uris) > 0 && mc.mainView != nil {
		mc.logger.Warning("Dropped items contain no local file", map[string]interface{}{
			"count": len(uris),
		})
		mc.mainView.ShowInfo(DropInfoTitle, DropInfoMessage)
	}
}

// ResetZoom restores the full plot range
func (mc *MainController) ResetZoom() {
	if mc.mainView == nil || mc.repository.Current() == nil {
		return
	}
	mc.mainView.ResetZoom()
}

// SetLogScale switches the plot y scale
func (mc *MainController) SetLogScale(enabled bool) {
	if mc.mainView == nil {
		return
	}
	mc.mainView.SetLogScale(enabled)
	mc.logger.Debug("Log scale toggled", map[string]interface{}{
		"enabled": enabled,
	})
}

// ToggleLogScale flips the plot y scale
func (mc *MainController) ToggleLogScale() {
	if mc.mainView == nil {
		return
	}
	mc.SetLogScale(!mc.mainView.GetPlot().LogScale())
}

// GetApplicationState returns the current repository snapshot
func (mc *MainController) GetApplicationState() models.State {
	return mc.repository.State()
}

func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetChooseFileHandler(mc.ChooseFile)
	mc.mainView.SetResetZoomHandler(mc.ResetZoom)
	mc.mainView.SetLogScaleHandler(mc.SetLogScale)
}

// handleReadError surfaces the single user-facing error class inline.
// Cancellation during shutdown is not shown.
func (mc *MainController) handleReadError(err error) {
	if errors.Is(err, context.Canceled) {
		mc.logger.Debug("Analysis cancelled", nil)
		return
	}

	var readErr *services.ReadError
	if !errors.As(err, &readErr) {
		// dialog failures never reached the service
		mc.repository.SetError(fmt.Errorf("file dialog: %w", err))
		mc.logger.Error("File dialog failed", err, nil)
	}
	mc.refreshView()
}

func (mc *MainController) refreshView() {
	if mc.mainView == nil {
		return
	}
	mc.mainView.ShowState(mc.repository.State())
}

// Shutdown cancels pending work and drops the current analysis
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.analysisService.Shutdown()
}
