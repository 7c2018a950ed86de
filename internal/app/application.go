package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriInspect/internal/config"
	"github.com/Rorical/RoriInspect/internal/core"
	"github.com/Rorical/RoriInspect/internal/dispatcher"
	"github.com/Rorical/RoriInspect/internal/eventbus"
	"github.com/Rorical/RoriInspect/internal/seed"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.SimService
	model      *AppModel
	logFile    *os.File
}

func NewApplication(cfg *config.Config) (*Application, error) {
	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return nil, err
	}

	seedFile, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	spawns, err := seedFile.Spawns()
	if err != nil {
		return nil, fmt.Errorf("seed world: %w", err)
	}

	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Printf("event bus: %v", e)
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewSimService(core.NewWorldState(), eb, spawns)

	model, err := NewAppModel(disp, cfg)
	if err != nil {
		return nil, fmt.Errorf("build overlay: %w", err)
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
		logFile:    logFile,
	}, nil
}

// setupLogging sends log output to path, or discards it when path is
// empty; the terminal belongs to the UI.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(path, "inspector")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (app *Application) Start() error {
	// Start background services
	app.service.Start()
	app.model.SetCoreReady(app.service.IsReady())

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.logFile != nil {
		app.logFile.Close()
	}
}
