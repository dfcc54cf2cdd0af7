package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"file-histogram/internal/config"
	"file-histogram/internal/controllers"
	"file-histogram/internal/logger"
	"file-histogram/internal/models"
	"file-histogram/internal/services"
	"file-histogram/internal/shutdown"
	"file-histogram/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "File Histogram"
	AppID      = "io.github.file-histogram"
	AppVersion = "1.0.0"
)

// Application owns the window and the MVC components
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  *logger.ZerologAdapter
	logFile io.Closer
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	service    *services.AnalysisService
	repository *models.AnalysisRepository
	shutdown   *shutdown.Manager
}

func main() {
	application, err := NewApplication(config.Load())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication wires the components together
func NewApplication(cfg config.Config) (*Application, error) {
	appLogger, logFile := newLogger(cfg)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	appLogger.Info("Application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"log_level":   cfg.LogLevel,
		"log_file":    cfg.LogFile,
	})

	shutdownManager := shutdown.NewManager(appLogger.With("ShutdownManager"))

	repository := models.NewAnalysisRepository()
	service := services.NewAnalysisService(repository, appLogger.With("AnalysisService"))
	controller := controllers.NewMainController(shutdownManager.Context(), service, appLogger.With("MainController"))
	view := views.NewMainView(window, cfg.PlotHeight, appLogger.With("HistogramPlot"))
	controller.SetMainView(view)

	shutdownManager.Register("controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		logFile:    logFile,
		config:     cfg,
		controller: controller,
		view:       view,
		service:    service,
		repository: repository,
		shutdown:   shutdownManager,
	}

	if cfg.LogScale {
		controller.SetLogScale(true)
	}

	application.setupMenus()
	application.setupShortcuts()
	application.setupWindowEvents()

	return application, nil
}

func newLogger(cfg config.Config) (*logger.ZerologAdapter, io.Closer) {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		return logger.NewConsoleLogger(level), nil
	}
	return logger.NewFileLogger(level, logger.FileOptions{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info("Application terminated", nil)
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		a.controller.LoadURIs(uris)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Window closed", nil)
	})
}
