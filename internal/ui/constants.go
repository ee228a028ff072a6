package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconPlay      = "▶"
	IconWatched   = "✓"
	IconCurrent   = "▶"
	IconUnwatched = "·"
	IconDelete    = "🗑"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 480

	HistoryDialogWidth  float32 = 420
	HistoryDialogHeight float32 = 360

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400
)
