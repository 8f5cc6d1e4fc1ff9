package bootstrap

import (
	"unsafe"

	"github.com/loov/hrtime"
	log "github.com/sirupsen/logrus"
)

// App owns the window and the Vulkan instance and walks them through
// startup, the event loop, and teardown. Resources are acquired in a fixed
// order and released in exactly the reverse order on every path, including
// startup failures that only acquired a prefix of them.
type App struct {
	cfg Config
	log *log.Logger

	windows   WindowSystem
	newDriver func(procAddr unsafe.Pointer) (Driver, error)

	subsystemUp bool
	window      Window
	api         Driver
	instance    Instance
}

// NewApp builds an App on the SDL window system and the real Vulkan loader.
// A nil logger falls back to the logrus standard logger.
func NewApp(cfg Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &App{
		cfg:       cfg,
		log:       logger,
		windows:   SDL(),
		newDriver: NewDriver,
	}
}

// Run drives the whole lifecycle and blocks until the window is closed or
// startup fails. Whatever was acquired has been released by the time it
// returns.
func (app *App) Run() error {
	defer app.cleanup()

	start := hrtime.Now()

	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	app.log.WithField("elapsed", hrtime.Since(start)).Info("bootstrap complete")

	return app.mainLoop()
}

func (app *App) initWindow() error {
	err := app.windows.Init()
	if err != nil {
		return err
	}
	app.subsystemUp = true

	window, err := app.windows.CreateWindow(app.cfg.WindowWidth, app.cfg.WindowHeight, app.cfg.WindowTitle)
	if err != nil {
		return err
	}
	app.window = window

	app.api, err = app.newDriver(window.InstanceProcAddr())
	return err
}

func (app *App) initVulkan() error {
	instance, err := CreateInstance(app.api, app.cfg, app.window.RequiredExtensionNames(), app.log)
	if err != nil {
		return err
	}
	app.instance = instance

	return nil
}

func (app *App) mainLoop() error {
	for !app.window.ShouldClose() {
		app.window.PollEvents()
	}
	return nil
}

// cleanup releases in reverse acquisition order. Handles are cleared as they
// go so nothing is ever destroyed twice.
func (app *App) cleanup() {
	if app.instance != nil {
		app.instance.Destroy()
		app.instance = nil
	}

	if app.window != nil {
		app.window.Destroy()
		app.window = nil
	}

	if app.subsystemUp {
		app.windows.Quit()
		app.subsystemUp = false
	}
}
