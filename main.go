package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/sweetbird/sweet-catalog/internal/browse"
	"github.com/sweetbird/sweet-catalog/internal/catalog"
	"github.com/sweetbird/sweet-catalog/internal/platform"
	"github.com/sweetbird/sweet-catalog/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.sweetbird.sweet-catalog"
	AppName = "Sweet Catalog"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	catalogSvc, err := catalog.NewService()
	if err != nil {
		// Only possible if the fixed endpoint literal is broken
		log.Fatalf("catalog client configuration error: %v", err)
	}

	session := browse.NewSession(catalogSvc)
	viewer := platform.NewAppViewer(myApp)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, session, viewer)

	// Show and run
	myWindow.ShowAndRun()
}
