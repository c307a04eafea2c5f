package config

import (
	"fyne.io/fyne/v2"

	"refboard/internal/decode"
	"refboard/internal/layout"
	"refboard/internal/model"
	"refboard/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyStartDirectory   = "start_directory"
	KeyGridColumns      = "grid_columns"
	KeyGridSpacing      = "grid_spacing"
	KeyUniformHeight    = "uniform_tile_height"
	KeyMaxDecodeWorkers = "max_decode_workers"
	KeyShowBackdrops    = "show_folder_backdrops"
)

// Default values
const (
	DefaultGridColumns   = layout.DefaultColumns
	DefaultGridSpacing   = layout.DefaultSpacing
	DefaultUniformHeight = 150
	DefaultShowBackdrops = true
)

// Clamp bounds
const (
	MinGridColumns   = 1
	MaxGridColumns   = 12
	MaxGridSpacing   = 100
	MinUniformHeight = 50
	MaxUniformHeight = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStartDirectory returns the directory the folder picker opens in
func (s *Settings) GetStartDirectory() string {
	dir := s.app.Preferences().String(KeyStartDirectory)
	if dir == "" {
		// Use the system Pictures directory
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp"
		}
		s.SetStartDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetStartDirectory sets the folder picker start directory
func (s *Settings) SetStartDirectory(dir string) {
	s.app.Preferences().SetString(KeyStartDirectory, dir)
}

// GetGridColumns returns the number of tile columns per folder grid
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().Int(KeyGridColumns)
	if value <= 0 {
		s.SetGridColumns(DefaultGridColumns)
		return DefaultGridColumns
	}
	return value
}

// SetGridColumns sets the number of tile columns per folder grid
func (s *Settings) SetGridColumns(count int) {
	if count < MinGridColumns {
		count = MinGridColumns
	}
	if count > MaxGridColumns {
		count = MaxGridColumns
	}
	s.app.Preferences().SetInt(KeyGridColumns, count)
}

// GetGridSpacing returns the gap between tiles in board units. Zero is a
// valid stored value, so absence is detected with a fallback rather than
// the zero check the other getters use.
func (s *Settings) GetGridSpacing() int {
	return s.app.Preferences().IntWithFallback(KeyGridSpacing, DefaultGridSpacing)
}

// SetGridSpacing sets the gap between tiles in board units
func (s *Settings) SetGridSpacing(spacing int) {
	if spacing < 0 {
		spacing = 0
	}
	if spacing > MaxGridSpacing {
		spacing = MaxGridSpacing
	}
	s.app.Preferences().SetInt(KeyGridSpacing, spacing)
}

// GetUniformHeight returns the height every decoded image is scaled to
func (s *Settings) GetUniformHeight() int {
	value := s.app.Preferences().Int(KeyUniformHeight)
	if value <= 0 {
		s.SetUniformHeight(DefaultUniformHeight)
		return DefaultUniformHeight
	}
	return value
}

// SetUniformHeight sets the height every decoded image is scaled to
func (s *Settings) SetUniformHeight(height int) {
	if height < MinUniformHeight {
		height = MinUniformHeight
	}
	if height > MaxUniformHeight {
		height = MaxUniformHeight
	}
	s.app.Preferences().SetInt(KeyUniformHeight, height)
}

// GetMaxDecodeWorkers returns the decode worker pool size
func (s *Settings) GetMaxDecodeWorkers() int {
	value := s.app.Preferences().Int(KeyMaxDecodeWorkers)
	if value <= 0 {
		s.SetMaxDecodeWorkers(decode.DefaultWorkers)
		return decode.DefaultWorkers
	}
	return value
}

// SetMaxDecodeWorkers sets the decode worker pool size
func (s *Settings) SetMaxDecodeWorkers(count int) {
	if count < 1 {
		count = 1
	}
	if count > decode.MaxWorkers {
		count = decode.MaxWorkers
	}
	s.app.Preferences().SetInt(KeyMaxDecodeWorkers, count)
}

// GetShowBackdrops returns whether folder backdrops are drawn
func (s *Settings) GetShowBackdrops() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowBackdrops, DefaultShowBackdrops)
}

// SetShowBackdrops sets whether folder backdrops are drawn
func (s *Settings) SetShowBackdrops(show bool) {
	s.app.Preferences().SetBool(KeyShowBackdrops, show)
}

// Grid builds the layout grid from the current settings. Cells are
// square at the uniform tile height, matching the decoder's scaling.
func (s *Settings) Grid() layout.Grid {
	side := float32(s.GetUniformHeight())
	return layout.Grid{
		Columns: s.GetGridColumns(),
		Spacing: float32(s.GetGridSpacing()),
		CellSize: model.Size{
			Width:  side,
			Height: side,
		},
	}
}
