package views

import (
	"fmt"

	"file-histogram/internal/logger"
	"file-histogram/internal/models"
	"file-histogram/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const PlotHeading = "Byte Frequency Histogram:"

// MainView is the single window of the application
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	fileInfo      *components.FileInfo
	errorLabel    *components.ErrorLabel
	plotSection   *fyne.Container
	plot          *components.HistogramPlot
	statsBar      *components.StatsBar
	shownID       string

	// Event handlers - connected to controller
	chooseFileHandler func()
	resetZoomHandler  func()
	logScaleHandler   func(bool)
}

// NewMainView creates the main view and installs it as window content
func NewMainView(window fyne.Window, plotHeight float32, log logger.Logger) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(plotHeight, log)
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents(plotHeight float32, log logger.Logger) {
	mv.toolbar = components.NewToolbar()
	mv.fileInfo = components.NewFileInfo()
	mv.errorLabel = components.NewErrorLabel()
	mv.plot = components.NewHistogramPlot(plotHeight, log)
	mv.statsBar = components.NewStatsBar()
}

func (mv *MainView) buildLayout() {
	mv.plotSection = container.NewBorder(
		widget.NewLabel(PlotHeading), // top
		mv.statsBar.GetContainer(),   // bottom
		nil,                          // left
		nil,                          // right
		mv.plot,                      // center
	)
	mv.plotSection.Hide()

	topArea := container.NewVBox(
		mv.toolbar.GetContainer(),
		mv.fileInfo.GetContainer(),
		mv.errorLabel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,        // top
		nil,            // bottom
		nil,            // left
		nil,            // right
		mv.plotSection, // center
	)

	mv.window.SetContent(container.NewPadded(mv.mainContainer))
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetChooseHandler(func() {
		if mv.chooseFileHandler != nil {
			mv.chooseFileHandler()
		}
	})

	mv.toolbar.SetResetHandler(func() {
		if mv.resetZoomHandler != nil {
			mv.resetZoomHandler()
		}
	})

	mv.toolbar.SetLogScaleHandler(func(enabled bool) {
		if mv.logScaleHandler != nil {
			mv.logScaleHandler(enabled)
		}
	})
}

// Event handler setters - called by controller

// SetChooseFileHandler sets the handler for file selection requests
func (mv *MainView) SetChooseFileHandler(handler func()) {
	mv.chooseFileHandler = handler
}

// SetResetZoomHandler sets the handler for reset zoom requests
func (mv *MainView) SetResetZoomHandler(handler func()) {
	mv.resetZoomHandler = handler
}

// SetLogScaleHandler sets the handler for log scale toggles
func (mv *MainView) SetLogScaleHandler(handler func(bool)) {
	mv.logScaleHandler = handler
}

// UI update methods - called by controller

// ShowState renders a repository snapshot. The plot is only replaced when
// the analysis changed so pan and zoom survive unrelated refreshes.
func (mv *MainView) ShowState(state models.State) {
	mv.fileInfo.SetPath(state.Path)
	mv.errorLabel.SetError(state.Error)

	if !state.HasHistogram() {
		mv.shownID = ""
		mv.plot.Clear()
		mv.statsBar.Reset()
		mv.plotSection.Hide()
		mv.toolbar.EnablePlotOperations(false)
		mv.updateTitle("")
		mv.mainContainer.Refresh()
		return
	}

	analysis := state.Analysis
	if analysis.ID != mv.shownID {
		mv.shownID = analysis.ID
		mv.plot.SetHistogram(&analysis.Histogram, analysis.Path)
	}
	mv.statsBar.SetSummary(analysis.Summary)
	mv.plotSection.Show()
	mv.toolbar.EnablePlotOperations(true)
	mv.updateTitle(analysis.Path)
	mv.mainContainer.Refresh()
}

// ResetZoom restores the full plot range
func (mv *MainView) ResetZoom() {
	mv.plot.ResetView()
}

// SetLogScale switches the plot y scale and syncs the checkbox
func (mv *MainView) SetLogScale(enabled bool) {
	mv.toolbar.SetLogScale(enabled)
	mv.plot.SetLogScale(enabled)
}

func (mv *MainView) updateTitle(path string) {
	title := components.Heading
	if path != "" {
		title = fmt.Sprintf("%s - %s", components.Heading, path)
	}
	mv.window.SetTitle(title)
}

// ShowFileDialog displays the native file selection dialog
func (mv *MainView) ShowFileDialog(callback func(fyne.URIReadCloser, error)) {
	dialog.ShowFileOpen(callback, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version string) {
	content := container.NewVBox(
		widget.NewLabel(appName),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(""),
		widget.NewLabel("Counts the bytes of a file and plots their frequency."),
		widget.NewLabel("Drag to pan, scroll to zoom, double click to reset."),
	)

	dialog.ShowCustom("About", "Close", content, mv.window)
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetPlot returns the plot component
func (mv *MainView) GetPlot() *components.HistogramPlot {
	return mv.plot
}

// ViewState represents what the view currently displays
type ViewState struct {
	FileText     string
	FileVisible  bool
	ErrorText    string
	ErrorVisible bool
	PlotVisible  bool
	Statistics   string
	Details      string
	LogScale     bool
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		FileText:     mv.fileInfo.Text(),
		FileVisible:  mv.fileInfo.Visible(),
		ErrorText:    mv.errorLabel.Text(),
		ErrorVisible: mv.errorLabel.Visible(),
		PlotVisible:  mv.plotSection.Visible(),
		Statistics:   mv.statsBar.Summary(),
		Details:      mv.statsBar.Details(),
		LogScale:     mv.plot.LogScale(),
	}
}
