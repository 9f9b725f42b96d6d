package main

import (
	"fmt"
	"time"

	"procdash/internal/app"

	"github.com/spf13/cobra"
)

var (
	jobsKey     string
	jobsLimit   int
	jobsTimeout int
)

func init() {
	rootCmd.AddCommand(cmdJobs)
	cmdJobs.Flags().StringVarP(&jobsKey, "key", "k", "", "Only show jobs for this process key")
	cmdJobs.Flags().IntVarP(&jobsLimit, "limit", "n", 20, "Maximum number of jobs to show")
	cmdJobs.Flags().IntVar(&jobsTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdJobs = &cobra.Command{
	Use:   "jobs",
	Short: "Show recorded process starts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		list, err := ctrl.Jobs(cmd.Context(), app.JobsParams{
			ProcessKey: jobsKey,
			Limit:      jobsLimit,
			Timeout:    requestTimeout(ctrl, jobsTimeout),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No jobs recorded")
			return nil
		}
		for _, j := range list {
			line := fmt.Sprintf("%s %s key=%s folder=%d state=%s",
				j.CreatedAt.Local().Format(time.DateTime), j.ID, j.ProcessKey, j.FolderID, j.State)
			if j.Error != "" {
				line += " error=" + j.Error
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
