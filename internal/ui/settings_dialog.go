package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"refboard/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	startDirEntry      *widget.Entry
	columnsEntry       *widget.Entry
	spacingEntry       *widget.Entry
	uniformHeightEntry *widget.Entry
	workersEntry       *widget.Entry
	backdropsCheck     *widget.Check

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved fires after a
// confirmed save; changes apply to the next folder load.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Start directory selection
	sd.startDirEntry = widget.NewEntry()
	sd.startDirEntry.SetPlaceHolder("Folder picker start directory")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	startDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.startDirEntry)

	// Grid shape
	sd.columnsEntry = widget.NewEntry()
	sd.columnsEntry.SetPlaceHolder("1-12")

	sd.spacingEntry = widget.NewEntry()
	sd.spacingEntry.SetPlaceHolder("0-100")

	// Tile scaling
	sd.uniformHeightEntry = widget.NewEntry()
	sd.uniformHeightEntry.SetPlaceHolder("50-600")

	// Decode pool
	sd.workersEntry = widget.NewEntry()
	sd.workersEntry.SetPlaceHolder("1-8")

	sd.backdropsCheck = widget.NewCheck("Draw folder backdrops", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Board Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Start Directory:"),
		startDirRow,

		widget.NewLabel("Grid Columns:"),
		sd.columnsEntry,

		widget.NewLabel("Tile Spacing:"),
		sd.spacingEntry,

		widget.NewLabel("Tile Height:"),
		sd.uniformHeightEntry,

		widget.NewSeparator(),
		widget.NewLabel("Loading"),
		widget.NewSeparator(),

		widget.NewLabel("Decode Workers:"),
		sd.workersEntry,

		sd.backdropsCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.startDirEntry.SetText(sd.settings.GetStartDirectory())
	sd.columnsEntry.SetText(strconv.Itoa(sd.settings.GetGridColumns()))
	sd.spacingEntry.SetText(strconv.Itoa(sd.settings.GetGridSpacing()))
	sd.uniformHeightEntry.SetText(strconv.Itoa(sd.settings.GetUniformHeight()))
	sd.workersEntry.SetText(strconv.Itoa(sd.settings.GetMaxDecodeWorkers()))
	sd.backdropsCheck.SetChecked(sd.settings.GetShowBackdrops())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.startDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.startDirEntry.Text != "" {
		sd.settings.SetStartDirectory(sd.startDirEntry.Text)
	}

	// Numeric entries are clamped by the setters; junk input is ignored
	if v, err := strconv.Atoi(sd.columnsEntry.Text); err == nil {
		sd.settings.SetGridColumns(v)
	}
	if v, err := strconv.Atoi(sd.spacingEntry.Text); err == nil {
		sd.settings.SetGridSpacing(v)
	}
	if v, err := strconv.Atoi(sd.uniformHeightEntry.Text); err == nil {
		sd.settings.SetUniformHeight(v)
	}
	if v, err := strconv.Atoi(sd.workersEntry.Text); err == nil {
		sd.settings.SetMaxDecodeWorkers(v)
	}

	sd.settings.SetShowBackdrops(sd.backdropsCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved. Changes apply to the next folder load.", sd.window)
}
