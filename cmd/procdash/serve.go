package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procdash/internal/dashboard"
	"procdash/internal/web"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdServe)
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard as a JSON HTTP API",
	Long:  `Serves the shared dashboard state (search, folder, sort, start confirmation) over HTTP on api.host:api.port.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		cfg, err := ctrl.Config()
		if err != nil {
			return err
		}
		logFile, err := cfg.SetupLogging("procdash-api")
		if err != nil {
			return err
		}
		if logFile != nil {
			defer logFile.Close()
		}

		store := dashboard.New(ctrl.Provider(), dashboard.Options{
			Timeout: cfg.RequestTimeout,
			Notify: func(ev dashboard.Event) {
				if ev.Err == nil {
					return
				}
				if ev.Kind == dashboard.EventStarted {
					log.Printf("start %s failed: %v", ev.Request.Key, ev.Err)
				} else {
					log.Printf("refresh failed: %v", ev.Err)
				}
			},
		})
		store.Refresh(context.Background())

		srv := web.NewServer(cfg, store, ctrl)
		errc := make(chan error, 1)
		go func() {
			errc <- srv.Start()
		}()
		fmt.Fprintf(cmd.OutOrStdout(), "Dashboard API on http://%s\n", srv.Addr())

		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-sigc:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
