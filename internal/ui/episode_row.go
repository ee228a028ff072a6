package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/epwatch/epwatch/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// EpisodeRow represents a compact episode row widget
type EpisodeRow struct {
	widget.BaseWidget

	episode model.Episode
	status  model.EpisodeStatus

	statusLabel *widget.Label
	titleLabel  *widget.Label
	fileLabel   *widget.Label
	sizeLabel   *widget.Label
	playBtn     *widget.Button
	revealBtn   *widget.Button

	onPlay   func(ep model.Episode)
	onReveal func(ep model.Episode)
}

// NewEpisodeRow creates a new episode row widget
func NewEpisodeRow() *EpisodeRow {
	er := &EpisodeRow{}
	er.ExtendBaseWidget(er)
	er.createUI()
	return er
}

// SetCallbacks sets the action callbacks
func (er *EpisodeRow) SetCallbacks(onPlay, onReveal func(ep model.Episode)) {
	er.onPlay = onPlay
	er.onReveal = onReveal
}

// UpdateEpisode updates the row with new episode data
func (er *EpisodeRow) UpdateEpisode(ep model.Episode, status model.EpisodeStatus) {
	er.episode = ep
	er.status = status
	er.updateFromEpisode()
	er.Refresh()
}

// createUI creates the UI components
func (er *EpisodeRow) createUI() {
	er.statusLabel = widget.NewLabel("")
	er.statusLabel.Alignment = fyne.TextAlignCenter

	er.titleLabel = widget.NewLabel("")
	er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	er.fileLabel = widget.NewLabel("")
	er.fileLabel.Truncation = fyne.TextTruncateEllipsis

	er.sizeLabel = widget.NewLabel("")
	er.sizeLabel.Alignment = fyne.TextAlignTrailing
	er.sizeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	er.playBtn = widget.NewButton(IconPlay, func() {
		if er.onPlay != nil {
			er.onPlay(er.episode)
		}
	})
	er.playBtn.Importance = widget.MediumImportance

	er.revealBtn = widget.NewButton("open", func() {
		if er.onReveal != nil {
			er.onReveal(er.episode)
		}
	})
	er.revealBtn.Importance = widget.LowImportance
}

// updateFromEpisode updates UI components based on episode state
func (er *EpisodeRow) updateFromEpisode() {
	er.titleLabel.SetText(er.episode.DisplayTitle())
	er.fileLabel.SetText(er.episode.Filename())

	if er.episode.FileSize > 0 {
		er.sizeLabel.SetText(formatFileSize(er.episode.FileSize))
	} else {
		er.sizeLabel.SetText(DashPlaceholder)
	}

	switch er.status {
	case model.EpisodeStatusWatched:
		er.statusLabel.SetText(IconWatched)
		er.statusLabel.Importance = widget.SuccessImportance
		er.titleLabel.TextStyle = fyne.TextStyle{}
	case model.EpisodeStatusCurrent:
		er.statusLabel.SetText(IconCurrent)
		er.statusLabel.Importance = widget.HighImportance
		er.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	default:
		er.statusLabel.SetText(IconUnwatched)
		er.statusLabel.Importance = widget.MediumImportance
		er.titleLabel.TextStyle = fyne.TextStyle{}
	}
}

// CreateRenderer creates the widget renderer
func (er *EpisodeRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(er.playBtn, er.revealBtn)
	info := container.NewHBox(er.sizeLabel, actions)

	content := container.NewBorder(
		nil, widget.NewSeparator(),
		er.statusLabel, info,
		container.NewVBox(er.titleLabel, er.fileLabel),
	)

	return widget.NewSimpleRenderer(content)
}
