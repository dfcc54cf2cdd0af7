package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const Heading = "File Histogram Viewer"

// Toolbar holds the heading and the file selection controls
type Toolbar struct {
	container     *fyne.Container
	heading       *widget.RichText
	chooseButton  *widget.Button
	resetButton   *widget.Button
	logScaleCheck *widget.Check

	// Event handlers
	chooseHandler   func()
	resetHandler    func()
	logScaleHandler func(bool)
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.heading = widget.NewRichTextFromMarkdown("## " + Heading)

	t.chooseButton = widget.NewButton("Choose File", nil)
	t.chooseButton.Importance = widget.HighImportance

	t.resetButton = widget.NewButton("Reset Zoom", nil)
	t.resetButton.Disable()

	t.logScaleCheck = widget.NewCheck("Log scale", nil)
	t.logScaleCheck.Disable()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewVBox(
		t.heading,
		container.NewHBox(
			t.chooseButton,
			widget.NewSeparator(),
			t.resetButton,
			t.logScaleCheck,
		),
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.chooseButton.OnTapped = func() {
		if t.chooseHandler != nil {
			t.chooseHandler()
		}
	}

	t.resetButton.OnTapped = func() {
		if t.resetHandler != nil {
			t.resetHandler()
		}
	}

	t.logScaleCheck.OnChanged = func(checked bool) {
		if t.logScaleHandler != nil {
			t.logScaleHandler(checked)
		}
	}
}

// SetChooseHandler sets the choose file handler
func (t *Toolbar) SetChooseHandler(handler func()) {
	t.chooseHandler = handler
}

// SetResetHandler sets the reset zoom handler
func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

// SetLogScaleHandler sets the log scale toggle handler
func (t *Toolbar) SetLogScaleHandler(handler func(bool)) {
	t.logScaleHandler = handler
}

// EnablePlotOperations enables the controls that need a histogram
func (t *Toolbar) EnablePlotOperations(enabled bool) {
	if enabled {
		t.resetButton.Enable()
		t.logScaleCheck.Enable()
	} else {
		t.resetButton.Disable()
		t.logScaleCheck.Disable()
	}
}

// SetLogScale updates the checkbox without firing the handler
func (t *Toolbar) SetLogScale(enabled bool) {
	handler := t.logScaleCheck.OnChanged
	t.logScaleCheck.OnChanged = nil
	t.logScaleCheck.SetChecked(enabled)
	t.logScaleCheck.OnChanged = handler
}

// LogScale returns the checkbox state
func (t *Toolbar) LogScale() bool {
	return t.logScaleCheck.Checked
}

// ChooseButton exposes the button for tests
func (t *Toolbar) ChooseButton() *widget.Button {
	return t.chooseButton
}

// ResetButton exposes the button for tests
func (t *Toolbar) ResetButton() *widget.Button {
	return t.resetButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
