package config

import "strings"

// AppVersion is the version of the application, set at build time with
// -ldflags "-X github.com/projecteur/projecteur/config.AppVersion=x.y.z".
var AppVersion = "0.0.0-dev"

// AppName is the name of the application.
const AppName = "Projecteur"

// AppID is the unique fyne application ID. Preferences are stored under it.
const AppID = "io.github.projecteur"

// ProjectURL is the home page shown in the about tab.
const ProjectURL = "https://github.com/jahnf/Projecteur"

// ReleaseOwner and ReleaseRepo identify the GitHub repository polled for updates.
const (
	ReleaseOwner = "jahnf"
	ReleaseRepo  = "Projecteur"
)

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
