package config

import "strings"

// AppVersion is the version of the application.
var AppVersion = "dev" // Overridden with -ldflags "-X" during release builds

// AppName is the name of the application.
const AppName = "Wallin"

// AppID is the unique fyne application identifier. Preferences are stored under it.
const AppID = "cn.ac.litgame.wallin"

// AppHomeURL is the project website shown in the about dialog.
const AppHomeURL = "https://wallin.litgame.ac.cn"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultServiceURL is the wallpaper service queried when no override is configured.
const DefaultServiceURL = "https://api.litgame.ac.cn"

// ServiceURLEnv overrides the service URL preference when set.
const ServiceURLEnv = "WALLIN_SERVICE_URL"
