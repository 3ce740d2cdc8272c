package settings

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type History struct {
	MaxStack int `json:"maxStack"`
	// Delay in milliseconds.
	Delay int `json:"delay"`
}

type Documents struct {
	MaxLength int `json:"maxLength"`
}

type API struct {
	BodyLimit int `json:"bodyLimit"`
}

type Settings struct {
	Root             string    `json:"-"`
	SettingsFilename string    `json:"settingsFilename"`
	IP               string    `json:"ip"`
	Port             string    `json:"port"`
	LogLevel         string    `json:"logLevel"`
	EnableMetrics    bool      `json:"enableMetrics"`
	GitVersion       string    `json:"-"`
	History          History   `json:"history"`
	Documents        Documents `json:"documents"`
	API              API       `json:"api"`
}

func (s *Settings) HistoryDelay() time.Duration {
	return time.Duration(s.History.Delay) * time.Millisecond
}

func (s *Settings) Address() string {
	return s.IP + ":" + s.Port
}

var Displayed Settings

// InitSettings loads settings.json from the working directory, falling back
// to defaults and environment overrides when it is missing.
func InitSettings(logger *zap.SugaredLogger) {
	pathToRoot, err := os.Getwd()
	if err != nil {
		pathToRoot = "."
	}
	var settingsFilePath = filepath.Join(pathToRoot, "settings.json")

	settingsFile, err := os.ReadFile(settingsFilePath)
	if err != nil {
		logger.Infow("no settings file found, using defaults", "path", settingsFilePath)
	}

	setting, err := ReadConfig(string(settingsFile))
	if err != nil {
		logger.Errorw("error reading settings, using defaults", "error", err)
		setting, _ = ReadConfig("")
	}
	setting.Root = pathToRoot
	setting.SettingsFilename = settingsFilePath
	Displayed = *setting
}
