package cmd

import (
	"os"

	adapterfilesystem "themeconv/internal/adapters/filesystem"
	adapterpalette "themeconv/internal/adapters/palette"
	adapterprompt "themeconv/internal/adapters/prompt"
	adapterrender "themeconv/internal/adapters/render"
	adapterstorage "themeconv/internal/adapters/storage"
	"themeconv/internal/config"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
	"themeconv/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ConverterService *services.ConverterService
	HistoryService   *services.HistoryService

	// Adapters used directly by commands
	Parser ports.PaletteParser

	Settings *config.Settings

	// Internal - for cleanup only
	runRepo ports.RunRepository
}

// NewContainer creates a new Container with all dependencies wired.
// History is optional: when the database cannot be opened conversions still work.
func NewContainer(settings *config.Settings) (*Container, error) {
	resolver := adapterfilesystem.NewResolver()
	discoverer := adapterfilesystem.NewDiscoverer(resolver)
	parser := adapterpalette.NewParser(resolver)
	renderer := adapterrender.NewRenderer()
	selector := adapterprompt.NewHuhSelector(os.Getenv("ACCESSIBLE") != "")

	var recorder ports.RunRecorder
	var historyService *services.HistoryService
	var runRepo ports.RunRepository
	if settings.History {
		repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
		if err != nil {
			logging.Logger.Warn("History disabled, failed to open database", "path", config.GetDBPath(), "error", err)
		} else {
			runRepo = repo
			recorder = repo
			historyService = services.NewHistoryService(repo)
		}
	}

	return &Container{
		ConverterService: services.NewConverterService(discoverer, parser, renderer, selector, recorder),
		HistoryService:   historyService,
		Parser:           parser,
		Settings:         settings,
		runRepo:          runRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.runRepo != nil {
		return c.runRepo.Close()
	}
	return nil
}
