package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "nasa-images.png"
)

// LoadLogoResource loads the logo from file path next to the binary's
// working directory. Callers fall back to no logo on error.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
