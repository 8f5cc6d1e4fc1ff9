package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap"
)

func init() {
	// SDL event handling has to stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	logger := log.New()

	app := bootstrap.NewApp(bootstrap.DefaultConfig(), logger)
	if err := app.Run(); err != nil {
		logger.Fatal(err)
	}
}
