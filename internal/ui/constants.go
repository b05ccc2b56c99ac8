package ui

import (
	"image/color"
	"time"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconSave     = "💾"
)

// Window sizing
const (
	MainWindowWidth      float32 = 900
	MainWindowHeight     float32 = 900
	PreviewWindowWidth   float32 = 1000
	PreviewWindowHeight  float32 = 850
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 380
)

// Grid and tile sizing
const (
	TileImageSize   float32 = 200
	TileLabelHeight float32 = 40
	LogPanelHeight  float32 = 180
)

// Log panel
const (
	LogTimestampFormat = "%d-%m-%Y %H:%M:%S"
	LogLineFormat      = "[%s] %s"
	MaxLogLines        = 1000
)

// Colors
var (
	ColorBackground  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorForeground  = color.RGBA{R: 50, G: 205, B: 50, A: 255} // lime green
	ColorInput       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	ColorButton      = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	ColorPlaceholder = color.RGBA{R: 60, G: 120, B: 60, A: 255}
)

// Delays
const (
	PreviewTimeout = 2 * time.Minute
)
