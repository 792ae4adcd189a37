package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Loading button sizing
const (
	LoadingButtonHeight   float32 = 60
	LoadingButtonMinWidth float32 = 240
	LoadingButtonPadding  float32 = 24
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Detail window sizing
const (
	DetailWindowWidth  float32 = 420
	DetailWindowHeight float32 = 260
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 480
)

// Header icon size on the main screen
const HeaderIconSize float32 = 96
