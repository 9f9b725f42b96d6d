package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"procdash/internal/config"
	"procdash/internal/daemon"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	force := flag.Bool("force", false, "Stop an existing daemon before starting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logFile, err := cfg.SetupLogging("procdash-daemon")
	if err != nil {
		log.Fatalf("failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if daemon.IsRunning() {
		if !*force {
			pid, err := daemon.RunningPID()
			if err != nil {
				log.Fatalf("daemon appears running but pid check failed: %v", err)
			}
			log.Printf("Daemon is already running (pid %d). Use --force to restart.", pid)
			return
		}
		log.Printf("Stopping existing daemon...")
		if err := daemon.StopRunningDaemon(true); err != nil {
			log.Fatalf("failed to stop running daemon: %v", err)
		}
	}

	srv, err := daemon.StartDaemon(cfg)
	if err != nil {
		log.Fatalf("failed to start daemon: %v", err)
	}
	backend := "local catalog " + cfg.CatalogPath
	if cfg.UsesOrchestrator() {
		backend = "orchestrator " + cfg.Orchestrator.BaseURL
	}
	log.Printf("Daemon started (pid %d) serving %s. Press Ctrl+C to stop.", os.Getpid(), backend)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Printf("Stopping daemon...")
	if err := srv.Close(); err != nil {
		log.Fatalf("error shutting down daemon: %v", err)
	}
	log.Printf("Daemon stopped.")
}
