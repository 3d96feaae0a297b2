package internal

// Launch target constants. The runtime and entry filenames are hardcoded:
// the launcher ships inside a packaged application directory and carries no
// per-app configuration for what it launches.
const (
	// File names
	RuntimeFile        = "qode"
	RuntimeFileWindows = "qode.exe"
	EntryScriptFile    = "main.js"

	// Directory names
	PlatformsDir = "platforms"
)

// Environment variable constants
const (
	PathKey                 = "PATH"
	QtPluginPathKey         = "QT_PLUGIN_PATH"
	QtPlatformPluginPathKey = "QT_QPA_PLATFORM_PLUGIN_PATH"

	// Launcher-own behavior, read from the optional .env beside the binary
	LogPathKey    = "QODE_CHAIR_LOG"
	NoDialogKey   = "QODE_CHAIR_NO_DIALOG"
	ShowWindowKey = "QODE_CHAIR_SHOW_WINDOW"
)

// File names relative to the launcher binary
const (
	EnvFileName = ".env"
	LogFileName = "qode-chair.log"
)

// Dialog titles
const (
	AlertTitle      = "Qode Application Error"
	SpawnAlertTitle = "Failed to Start Application"
)

// Version is the qode-chair release version.
const Version = "0.3.1"
