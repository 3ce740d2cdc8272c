package main

import (
	"os"

	"github.com/ether/delta-go/lib/server"
	settings2 "github.com/ether/delta-go/lib/settings"
	"github.com/ether/delta-go/lib/utils"
)

// @title Delta Go API
// @version 1.0
// @description Compose, invert and slice rich text deltas and keep undoable documents in memory.
// @BasePath /
func main() {
	setupLogger := utils.SetupLogger(os.Getenv(settings2.EnvVar(settings2.LogLevel)))
	defer setupLogger.Sync()

	if len(os.Args) > 1 && os.Args[1] == "config" {
		settings2.HandleConfigCommand(setupLogger)
		return
	}

	server.InitServer(setupLogger)
}
