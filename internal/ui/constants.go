package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "↻"
	IconOpen     = "🔗"
	IconSweet    = "🍬"
)

// Layout sizing (ItemRow / lists)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 44

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonWidth  float32 = 60
	MobileButtonHeight float32 = 48
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)
