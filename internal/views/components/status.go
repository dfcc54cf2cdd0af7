package components

import (
	"fmt"
	"image/color"

	"file-histogram/internal/histogram"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ErrorColor is the colour of the inline read error
var ErrorColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// FileInfo shows the currently selected file
type FileInfo struct {
	label *widget.Label
}

// NewFileInfo creates a hidden file label
func NewFileInfo() *FileInfo {
	fi := &FileInfo{label: widget.NewLabel("")}
	fi.label.Truncation = fyne.TextTruncateEllipsis
	fi.label.Hide()
	return fi
}

// SetPath shows the path, or hides the label when path is empty
func (fi *FileInfo) SetPath(path string) {
	if path == "" {
		fi.label.SetText("")
		fi.label.Hide()
		return
	}
	fi.label.SetText(FormatSelectedFile(path))
	fi.label.Show()
}

// Text returns the label text
func (fi *FileInfo) Text() string {
	return fi.label.Text
}

// Visible reports whether the label is shown
func (fi *FileInfo) Visible() bool {
	return fi.label.Visible()
}

// GetContainer returns the label
func (fi *FileInfo) GetContainer() fyne.CanvasObject {
	return fi.label
}

// FormatSelectedFile renders the selected file line
func FormatSelectedFile(path string) string {
	return "Selected file: " + path
}

// ErrorLabel shows a read failure as coloured inline text
type ErrorLabel struct {
	text *canvas.Text
}

// NewErrorLabel creates a hidden error label
func NewErrorLabel() *ErrorLabel {
	el := &ErrorLabel{text: canvas.NewText("", ErrorColor)}
	el.text.Hide()
	return el
}

// SetError shows msg, or hides the label when msg is empty
func (el *ErrorLabel) SetError(msg string) {
	el.text.Text = msg
	if msg == "" {
		el.text.Hide()
	} else {
		el.text.Show()
	}
	el.text.Refresh()
}

// Text returns the current message
func (el *ErrorLabel) Text() string {
	return el.text.Text
}

// Visible reports whether the label is shown
func (el *ErrorLabel) Visible() bool {
	return el.text.Visible()
}

// GetContainer returns the text object
func (el *ErrorLabel) GetContainer() fyne.CanvasObject {
	return el.text
}

// StatsBar displays the summary statistics of the current histogram
type StatsBar struct {
	container    *fyne.Container
	summaryLabel *widget.Label
	detailLabel  *widget.Label
}

// NewStatsBar creates a new statistics component
func NewStatsBar() *StatsBar {
	sb := &StatsBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatsBar) createComponents() {
	sb.summaryLabel = widget.NewLabel("")
	sb.detailLabel = widget.NewLabel("")
}

func (sb *StatsBar) buildLayout() {
	sb.container = container.NewVBox(
		sb.summaryLabel,
		sb.detailLabel,
	)
}

// SetSummary updates both statistics lines
func (sb *StatsBar) SetSummary(s histogram.Summary) {
	sb.summaryLabel.SetText(FormatStatistics(s))
	sb.detailLabel.SetText(FormatDetails(s))
}

// Summary returns the first statistics line
func (sb *StatsBar) Summary() string {
	return sb.summaryLabel.Text
}

// Details returns the second statistics line
func (sb *StatsBar) Details() string {
	return sb.detailLabel.Text
}

// Reset clears the statistics
func (sb *StatsBar) Reset() {
	sb.summaryLabel.SetText("")
	sb.detailLabel.SetText("")
}

// GetContainer returns the statistics container
func (sb *StatsBar) GetContainer() *fyne.Container {
	return sb.container
}

// FormatStatistics renders the total/unique/peak line
func FormatStatistics(s histogram.Summary) string {
	return fmt.Sprintf("Statistics: %d total bytes, %d unique bytes, max frequency: %d",
		s.Total, s.Unique, s.Peak)
}

// FormatDetails renders the most frequent byte and the entropy
func FormatDetails(s histogram.Summary) string {
	if s.Total == 0 {
		return fmt.Sprintf("Entropy: %.4f bits/byte", s.Entropy)
	}
	return fmt.Sprintf("Most frequent byte: 0x%02X (%d), entropy: %.4f bits/byte",
		s.PeakByte, s.PeakByte, s.Entropy)
}
