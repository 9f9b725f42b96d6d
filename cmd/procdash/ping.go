package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"procdash/internal/app"
)

var pingTimeoutSeconds int

func init() {
	cmdPing.Flags().IntVarP(&pingTimeoutSeconds, "timeout", "t", 2, "Timeout in seconds for daemon ping")
	rootCmd.AddCommand(cmdPing)
}

var cmdPing = &cobra.Command{
	Use:   "ping",
	Short: "Check that the daemon answers on its socket",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		msg, err := controller().Ping(cmd.Context(), time.Duration(pingTimeoutSeconds)*time.Second)
		if errors.Is(err, app.ErrDaemonNotRunning) {
			return fmt.Errorf("%w; start it with `procdash daemon`", err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", msg, time.Since(start).Round(time.Millisecond))
		return nil
	},
}
