package main

import (
	"flag"
	"log"

	"procdash/internal/app"
	"procdash/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	controller := app.New(app.Options{ConfigPath: *configPath})
	if _, err := controller.Config(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	err := tui.Run(controller, tui.Options{
		Provider: controller.Provider(),
		Folders:  controller.Folders(),
		Timeout:  controller.RequestTimeout(),
	})
	if err != nil {
		log.Fatalf("tui exited with error: %v", err)
	}
}
