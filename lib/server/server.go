package server

import (
	"os"

	"github.com/ether/delta-go/lib"
	api2 "github.com/ether/delta-go/lib/api"
	"github.com/ether/delta-go/lib/document"
	"github.com/ether/delta-go/lib/history"
	settings2 "github.com/ether/delta-go/lib/settings"
	"github.com/ether/delta-go/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp wires the document manager and every API route onto a fresh fiber app.
func NewApp(settings *settings2.Settings, setupLogger *zap.SugaredLogger) *fiber.App {
	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             settings.API.BodyLimit,
	})
	app.Use(recover.New())

	documentManager := document.NewManager(document.Options{
		History: history.Options{
			MaxStack: settings.History.MaxStack,
			Delay:    settings.HistoryDelay(),
		},
		MaxLength: settings.Documents.MaxLength,
	}, setupLogger)

	api2.InitAPI(&lib.InitStore{
		C:                 app,
		RetrievedSettings: settings,
		DocumentManager:   documentManager,
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
	})
	return app
}

func InitServer(setupLogger *zap.SugaredLogger) {
	settings2.InitSettings(setupLogger)

	var settings = settings2.Displayed
	setupLogger = utils.SetupLogger(settings.LogLevel)
	settings.GitVersion = settings2.GitVersion()
	setupLogger.Info("Starting Delta Go...")
	if settings.GitVersion != "" {
		setupLogger.Info("Your Delta Go version is " + settings.GitVersion)
	}

	app := NewApp(&settings, setupLogger)

	fiberString := settings.Address()
	setupLogger.Info("Starting API on " + fiberString)
	err := app.Listen(fiberString)
	if err != nil {
		setupLogger.Error("Error starting API: " + err.Error())
		os.Exit(1)
	}
}
