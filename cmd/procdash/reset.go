package main

import (
	"fmt"
	"strings"

	"procdash/internal/app"

	"github.com/spf13/cobra"
)

var (
	resetConfirm string
	resetTimeout int
)

func init() {
	rootCmd.AddCommand(cmdReset)
	cmdReset.Flags().StringVar(&resetConfirm, "confirm", "", `Type "RESET" to acknowledge the wipe`)
	cmdReset.Flags().IntVar(&resetTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdReset = &cobra.Command{
	Use:   "reset",
	Short: "Erase the local catalog and the job history",
	Long:  "Removes every cataloged process, resets ID counters, rewrites the catalog file and purges recorded jobs. Requires --confirm RESET.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		err := ctrl.Reset(cmd.Context(), app.ResetParams{
			Timeout:   requestTimeout(ctrl, resetTimeout),
			Confirmed: strings.TrimSpace(resetConfirm) == "RESET",
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Catalog and job history cleared")
		return nil
	},
}
