package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/go-strftime"
	"go.uber.org/zap"

	"github.com/ytget/nasa-images/internal/logger"
)

// FormatLogLine prefixes message with a [dd-mm-YYYY HH:MM:SS] timestamp
func FormatLogLine(at time.Time, message string) string {
	return fmt.Sprintf(LogLineFormat, strftime.Format(LogTimestampFormat, at), message)
}

// LogPanel is the scrolling, timestamped message list under the grid.
// Append is safe to call from any goroutine.
type LogPanel struct {
	lines  binding.StringList
	list   *widget.List
	now    func() time.Time
	logger *zap.SugaredLogger
}

// NewLogPanel creates an empty log panel
func NewLogPanel() *LogPanel {
	lp := &LogPanel{
		lines:  binding.NewStringList(),
		now:    time.Now,
		logger: logger.Named("ui.log"),
	}

	lp.list = widget.NewListWithData(
		lp.lines,
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	return lp
}

// Append adds a timestamped line and scrolls to it
func (lp *LogPanel) Append(message string) {
	line := FormatLogLine(lp.now(), message)
	lp.logger.Debugw("Log line", "message", message)

	fyne.Do(func() {
		_ = lp.lines.Append(line)
		if n := lp.lines.Length(); n > MaxLogLines {
			all, _ := lp.lines.Get()
			_ = lp.lines.Set(all[n-MaxLogLines:])
		}
		lp.list.ScrollToBottom()
	})
}

// Lines returns a copy of the current lines
func (lp *LogPanel) Lines() []string {
	lines, _ := lp.lines.Get()
	return append([]string(nil), lines...)
}

// Container returns the panel widget
func (lp *LogPanel) Container() fyne.CanvasObject {
	return lp.list
}
