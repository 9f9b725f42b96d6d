package main

import (
	"fmt"

	"procdash/internal/app"
	"procdash/internal/process"

	"github.com/spf13/cobra"
)

var (
	addName        string
	addVersion     string
	addDescription string
	addFolder      int
	addTimeout     int
)

func init() {
	rootCmd.AddCommand(cmdAdd)

	cmdAdd.Flags().StringVar(&addName, "name", "", "Display name (defaults to the key)")
	cmdAdd.Flags().StringVar(&addVersion, "version", "", "Process version")
	cmdAdd.Flags().StringVar(&addDescription, "description", "", "Free-form description")
	cmdAdd.Flags().IntVar(&addFolder, "folder", 0, "Owning folder id (default: 1)")
	cmdAdd.Flags().IntVar(&addTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdAdd = &cobra.Command{
	Use:   "add <process-key>",
	Short: "Register a process in the local catalog",
	Long:  `Adds a process to the daemon's local catalog. Not available when the daemon proxies an orchestrator.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		result, err := ctrl.Add(cmd.Context(), app.AddParams{
			Process: process.Process{
				Key:         args[0],
				Name:        addName,
				Version:     addVersion,
				Description: addDescription,
				FolderID:    addFolder,
			},
			Timeout: requestTimeout(ctrl, addTimeout),
		})
		if err != nil {
			return err
		}
		if result.AlreadyExists {
			fmt.Fprintf(cmd.OutOrStdout(), "Process already registered: %s\n", result.ExistingReason)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered %s with id %d\n", args[0], result.ID)
		return nil
	},
}
