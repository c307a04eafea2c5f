package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"refboard/internal/config"
	"refboard/internal/favorites"
	"refboard/internal/ingest"
	"refboard/internal/layout"
	"refboard/internal/model"
	"refboard/internal/platform"
	"refboard/internal/scene"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	settings   *config.Settings
	controller *ingest.Controller
	origins    *layout.OriginAllocator
	scene      *scene.Scene
	board      *Board
	favorites  *favorites.Store

	parentDir     string
	subfolders    []string
	loaded        map[string]bool
	parentLabel   *widget.Label
	folderList    *widget.List
	favoritesList *widget.List

	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	statusTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *ingest.Controller, origins *layout.OriginAllocator, sc *scene.Scene, favStore *favorites.Store) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:     window,
		app:        app,
		settings:   settings,
		controller: controller,
		origins:    origins,
		scene:      sc,
		favorites:  favStore,
		loaded:     make(map[string]bool),
	}

	window.SetTitle("Reference Board")

	// Ingestion callbacks fire on job goroutines; every scene or widget
	// touch hops to the event loop first.
	controller.SetPlaceCallback(ui.onTilePlaced)
	controller.SetBackdropCallback(ui.onBackdropGrown)
	controller.SetProgressCallback(ui.onJobProgress)
	controller.SetDoneCallback(ui.onJobDone)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.board = NewBoard(ui.scene)
	ui.board.SetShowBackdrops(ui.settings.GetShowBackdrops())
	ui.board.SetTileMenuCallback(ui.onTileMenu)
	ui.board.SetTileActivatedCallback(func(tile *model.ImageTile) {
		ui.setStatus(tile.Source.Path, false)
	})
	// No window positioning API is available, so a long secondary drag
	// pans the view like the middle button does.
	ui.board.SetWindowMoveCallback(ui.board.PanBy)

	// Toolbar
	openBtn := widget.NewButton(IconFolder+" Open Directory", ui.onOpenDirectory)
	clearBtn := widget.NewButton("Clear", ui.onClearCanvas)
	resetBtn := widget.NewButton("Reset View", ui.board.ResetView)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	toolbar := container.NewHBox(openBtn, clearBtn, resetBtn, settingsBtn)

	// Sidebar: the opened directory's subfolders as a checklist. Checking
	// loads the folder onto the board, unchecking unloads its grouping.
	ui.parentLabel = widget.NewLabel("No directory open")
	ui.parentLabel.Truncation = fyne.TextTruncateEllipsis
	ui.folderList = widget.NewList(
		func() int { return len(ui.subfolders) },
		func() fyne.CanvasObject { return widget.NewCheck("folder", nil) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.subfolders) {
				return
			}
			folder := ui.subfolders[id]
			check := obj.(*widget.Check)
			// Detach the handler while syncing state so SetChecked
			// doesn't trigger a load
			check.OnChanged = nil
			check.Text = folderListLabel(ui.parentDir, folder)
			check.SetChecked(ui.loaded[folder])
			check.Refresh()
			check.OnChanged = func(checked bool) {
				if checked {
					ui.loadFolder(folder)
				} else {
					ui.unloadFolder(folder)
				}
			}
		},
	)

	ui.favoritesList = widget.NewList(
		func() int { return len(ui.favorites.List()) },
		func() fyne.CanvasObject { return widget.NewLabel("folder") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			favs := ui.favorites.List()
			if id < len(favs) {
				obj.(*widget.Label).SetText(filepath.Base(favs[id]))
			}
		},
	)
	ui.favoritesList.OnSelected = ui.onFavoriteSelected

	foldersTab := container.NewBorder(ui.parentLabel, nil, nil, nil, ui.folderList)
	sidebar := container.NewAppTabs(
		container.NewTabItem("Folders", foldersTab),
		container.NewTabItem(IconStar+" Favorites", ui.favoritesList),
	)

	// Status bar
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.statusLabel = widget.NewLabel("")
	statusBar := container.NewBorder(nil, nil, nil, ui.progressBar, ui.statusLabel)

	split := container.NewHSplit(sidebar, ui.board)
	split.Offset = float64(SidebarWidth / (SidebarWidth + BoardMinWidth))

	content := container.NewBorder(toolbar, statusBar, nil, nil, split)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem("Open Directory…", ui.onOpenDirectory)
	clearItem := fyne.NewMenuItem("Clear Canvas", ui.onClearCanvas)
	settingsItem := fyne.NewMenuItem("Settings…", ui.onShowSettings)

	resetViewItem := fyne.NewMenuItem("Reset View", func() { ui.board.ResetView() })
	backdropsItem := fyne.NewMenuItem("Toggle Backdrops", ui.onToggleBackdrops)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", openItem, clearItem, fyne.NewMenuItemSeparator(), settingsItem),
		fyne.NewMenu("View", resetViewItem, backdropsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onOpenDirectory picks the parent directory whose subfolders fill the
// sidebar checklist.
func (ui *RootUI) onOpenDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.setParentDir(uri.Path())
	}, ui.window)
}

// setParentDir lists the directory's subfolders into the sidebar. The
// directory itself is the first entry so flat image folders work too.
func (ui *RootUI) setParentDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		ui.setStatus(err.Error(), true)
		return
	}

	ui.parentDir = dir
	ui.subfolders = []string{dir}
	for _, entry := range entries {
		if entry.IsDir() {
			ui.subfolders = append(ui.subfolders, filepath.Join(dir, entry.Name()))
		}
	}

	ui.settings.SetStartDirectory(dir)
	ui.parentLabel.SetText(filepath.Base(dir))
	ui.folderList.Refresh()
}

// loadFolder starts an ingestion job for the folder.
func (ui *RootUI) loadFolder(folder string) {
	job, err := ui.controller.Load(folder, ui.settings.Grid())
	if err != nil {
		ui.setStatus(err.Error(), true)
		return
	}
	log.Printf("started load job %s for %s", job.ID, folder)

	ui.loaded[folder] = true
	ui.folderList.Refresh()

	ui.progressBar.SetValue(0)
	ui.progressBar.Show()
	ui.setStatus("Loading "+filepath.Base(folder)+"…", false)
}

// unloadFolder cancels any active job for the folder and removes its tiles.
func (ui *RootUI) unloadFolder(folder string) {
	if job, active := ui.controller.JobForFolder(folder); active {
		if err := ui.controller.Cancel(job.ID); err != nil {
			log.Printf("cancel job %s: %v", job.ID, err)
		}
	}

	ui.scene.RemoveGroup(folder)
	delete(ui.loaded, folder)
	ui.folderList.Refresh()
	ui.board.Refresh()
	ui.setStatus("Unloaded "+filepath.Base(folder), false)
}

// onClearCanvas cancels all jobs and empties the board.
func (ui *RootUI) onClearCanvas() {
	ui.controller.CancelAll()
	ui.scene.RemoveAll()
	ui.origins.Reset()
	ui.loaded = make(map[string]bool)
	ui.folderList.Refresh()
	ui.board.Refresh()
	ui.progressBar.Hide()
	ui.setStatus("Canvas cleared", false)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		ui.board.SetShowBackdrops(ui.settings.GetShowBackdrops())
	}).Show()
}

// onToggleBackdrops flips backdrop visibility.
func (ui *RootUI) onToggleBackdrops() {
	show := !ui.settings.GetShowBackdrops()
	ui.settings.SetShowBackdrops(show)
	ui.board.SetShowBackdrops(show)
}

// onFavoriteSelected loads the picked favorite.
func (ui *RootUI) onFavoriteSelected(id widget.ListItemID) {
	ui.favoritesList.UnselectAll()
	favs := ui.favorites.List()
	if id >= len(favs) {
		return
	}
	ui.loadFolder(favs[id])
}

// onTileMenu opens the context menu for a tile.
func (ui *RootUI) onTileMenu(tile *model.ImageTile, pos fyne.Position) {
	ui.showFolderMenu(tile.Folder, pos)
}

// showFolderMenu pops up the per-folder actions.
func (ui *RootUI) showFolderMenu(folder string, pos fyne.Position) {
	favItem := fyne.NewMenuItem(IconStar+" Add to Favorites", func() {
		ui.toggleFavorite(folder)
	})
	if ui.favorites.Contains(folder) {
		favItem.Label = IconStarOff + " Remove from Favorites"
	}

	menu := fyne.NewMenu("",
		favItem,
		fyne.NewMenuItem("Reveal in File Manager", func() {
			if err := platform.OpenFolderInManager(folder); err != nil {
				ui.setStatus(err.Error(), true)
			}
		}),
		fyne.NewMenuItem("Unload Folder", func() {
			ui.unloadFolder(folder)
		}),
	)
	widget.ShowPopUpMenuAtPosition(menu, ui.window.Canvas(), pos)
}

// toggleFavorite adds or removes the folder from the favorites store.
func (ui *RootUI) toggleFavorite(folder string) {
	var err error
	if ui.favorites.Contains(folder) {
		_, err = ui.favorites.Remove(folder)
	} else {
		_, err = ui.favorites.Add(folder)
	}
	if err != nil {
		ui.setStatus(err.Error(), true)
		return
	}
	ui.favoritesList.Refresh()
}

// onTilePlaced inserts a placed tile into the scene.
func (ui *RootUI) onTilePlaced(jobID string, tile *model.ImageTile) {
	fyne.Do(func() {
		ui.scene.InsertTile(tile)
		ui.board.Refresh()
	})
}

// onBackdropGrown inserts or resizes a folder backdrop.
func (ui *RootUI) onBackdropGrown(jobID string, backdrop *model.FolderBackdrop) {
	fyne.Do(func() {
		ui.scene.SetBackdrop(backdrop)
		ui.board.Refresh()
	})
}

// onJobProgress updates the progress bar.
func (ui *RootUI) onJobProgress(jobID string, fraction float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(fraction)
	})
}

// onJobDone reports the job outcome and hides the progress bar.
func (ui *RootUI) onJobDone(job model.IngestionJob) {
	fyne.Do(func() {
		ui.progressBar.Hide()

		name := filepath.Base(job.Folder)
		switch job.Status {
		case model.JobStatusCompleted:
			message := fmt.Sprintf("Loaded %s: %d images", name, job.Completed-job.Failed)
			if job.Failed > 0 {
				message += fmt.Sprintf(MiddleDotSeparator+"%d failed", job.Failed)
			}
			ui.setStatus(message, false)
			ui.app.SendNotification(&fyne.Notification{
				Title:   "Folder loaded",
				Content: message,
			})
		case model.JobStatusCancelled:
			ui.setStatus("Cancelled "+name, false)
		case model.JobStatusFailed:
			ui.setStatus(IconError+" "+name+": "+job.LastError, true)
			// The folder never produced tiles; clear its checkbox
			delete(ui.loaded, job.Folder)
			ui.folderList.Refresh()
		}
	})
}

// folderListLabel formats a checklist entry: the parent directory itself
// shows as ".", subfolders by base name.
func folderListLabel(parent, folder string) string {
	if folder == parent {
		return "."
	}
	return filepath.Base(folder)
}

// setStatus shows a message in the status bar. Non-error messages clear
// themselves after a short delay.
func (ui *RootUI) setStatus(message string, isError bool) {
	ui.statusLabel.SetText(message)

	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
		ui.statusTimer = nil
	}
	if isError {
		return
	}
	ui.statusTimer = time.AfterFunc(StatusAutoClear, func() {
		fyne.Do(func() {
			if ui.statusLabel.Text == message {
				ui.statusLabel.SetText("")
			}
		})
	})
}
