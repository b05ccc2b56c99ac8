package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/nasa-images/internal/config"
	"github.com/ytget/nasa-images/internal/logger"
	"github.com/ytget/nasa-images/internal/pipeline"
	"github.com/ytget/nasa-images/internal/platform"
	"github.com/ytget/nasa-images/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.nasa-images"
	AppName = "NASA Image Search"
)

func main() {
	if err := logger.Initialize(os.Getenv("NASA_IMAGES_JSON_LOGS") != "", os.Getenv("NASA_IMAGES_DEBUG") != ""); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}
	defer logger.Cleanup()

	logger.Logger.Infow("Starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetSaveDirectory()); err != nil {
		logger.Logger.Warnw("Failed to ensure save directory", logger.FieldError, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := pipeline.NewLoop()
	loop.Start(ctx)

	ui.NewRootUI(ctx, myWindow, myApp, loop)

	myWindow.ShowAndRun()
}
