package main

import (
	"fmt"

	"procdash/internal/tui"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		err := tui.Run(ctrl, tui.Options{
			Provider: ctrl.Provider(),
			Folders:  ctrl.Folders(),
			Timeout:  ctrl.RequestTimeout(),
		})
		if err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}
