package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"refboard/internal/cache"
	"refboard/internal/config"
	"refboard/internal/decode"
	"refboard/internal/favorites"
	"refboard/internal/ingest"
	"refboard/internal/layout"
	"refboard/internal/platform"
	"refboard/internal/scene"
	"refboard/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.refboard.refboard"
	AppName = "Reference Board"

	WindowWidth  = 1200
	WindowHeight = 800

	ImageCacheCapacity = 100
	FavoritesFileName  = "favorites.json"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply board theme
	myApp.Settings().SetTheme(ui.NewBoardTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	pool := decode.NewPool(
		settings.GetMaxDecodeWorkers(),
		settings.GetUniformHeight(),
		cache.NewLRU(ImageCacheCapacity),
	)
	defer pool.Close()

	origins := layout.NewOriginAllocator()
	controller := ingest.NewController(pool, origins)

	favoritesPath, err := platform.ConfigFilePath(AppID, FavoritesFileName)
	if err != nil {
		fmt.Printf("failed to locate favorites file: %v\n", err)
	}
	favStore, err := favorites.NewStore(favoritesPath)
	if err != nil {
		fmt.Printf("failed to load favorites: %v\n", err)
		favStore, _ = favorites.NewStore("")
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, origins, scene.New(), favStore)

	// Show and run
	myWindow.ShowAndRun()
}
