package main

import (
	"fmt"
	"strings"

	"procdash/internal/app"

	"github.com/spf13/cobra"
)

var rmTimeout int

func init() {
	rootCmd.AddCommand(cmdRm)
	cmdRm.Flags().IntVar(&rmTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdRm = &cobra.Command{
	Use:   "rm <process-key> [process-key...]",
	Short: "Remove processes from the local catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		result, err := ctrl.Remove(cmd.Context(), app.RemoveParams{
			Keys:    args,
			Timeout: requestTimeout(ctrl, rmTimeout),
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, key := range result.Removed {
			fmt.Fprintf(out, "Removed %s\n", key)
		}
		if len(result.Missing) > 0 {
			fmt.Fprintf(out, "Not found: %s\n", strings.Join(result.Missing, ", "))
		}
		return nil
	},
}
