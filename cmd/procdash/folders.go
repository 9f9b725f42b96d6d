package main

import (
	"fmt"

	"procdash/internal/app"

	"github.com/spf13/cobra"
)

var foldersTimeout int

func init() {
	rootCmd.AddCommand(cmdFolders)
	cmdFolders.Flags().IntVar(&foldersTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdFolders = &cobra.Command{
	Use:   "folders",
	Short: "List folders and how many processes each holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		summaries, err := ctrl.FolderSummaries(cmd.Context(), app.FoldersParams{
			Timeout: requestTimeout(ctrl, foldersTimeout),
		})
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s: %d\n", s.Folder.ID, s.Folder.Name, s.Count)
		}
		return nil
	},
}
