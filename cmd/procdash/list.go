package main

import (
	"fmt"
	"io"
	"strings"

	"procdash/internal/app"
	"procdash/internal/dashboard"
	"procdash/internal/process"

	"github.com/spf13/cobra"
)

var (
	listSearch  string
	listFolder  string
	listSort    string
	listDesc    bool
	listTimeout int
)

func init() {
	rootCmd.AddCommand(cmdList)

	cmdList.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive match on name, key or description")
	cmdList.Flags().StringVarP(&listFolder, "folder", "f", "all", `Folder id, or "all"`)
	cmdList.Flags().StringVar(&listSort, "sort", "name", "Sort column: name, key or description")
	cmdList.Flags().BoolVar(&listDesc, "desc", false, "Sort in descending order")
	cmdList.Flags().IntVar(&listTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List processes, filtered and sorted",
	Long:  `Fetches the folder's processes from the daemon, then applies the search term and sort order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := process.ParseFolderFilter(listFolder)
		if err != nil {
			return err
		}
		field, err := process.ParseSortField(listSort)
		if err != nil {
			return err
		}
		sort := process.SortState{Field: field, Direction: process.Ascending}
		if listDesc {
			sort.Direction = process.Descending
		}

		ctrl := controller()
		result, err := ctrl.List(cmd.Context(), app.ListParams{
			Folder:  folder,
			Search:  listSearch,
			Sort:    sort,
			Timeout: requestTimeout(ctrl, listTimeout),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Processes) == 0 {
			if result.Total == 0 {
				fmt.Fprintln(out, "No processes found. Create processes in UiPath Orchestrator to see them here.")
			} else {
				fmt.Fprintf(out, "No processes matching %q\n", listSearch)
			}
			return nil
		}

		view := dashboard.View{Processes: result.Processes, Criteria: process.Criteria{Search: listSearch, Folder: folder}}
		fmt.Fprintf(out, "%s in %s\n", view.Summary(), dashboard.FolderLabel(ctrl.Folders(), folder))
		printProcesses(out, ctrl.Folders(), result.Processes)
		return nil
	},
}

func printProcesses(out io.Writer, folders []dashboard.Folder, procs []process.Process) {
	for _, p := range procs {
		version := ""
		if strings.TrimSpace(p.Version) != "" {
			version = " v" + p.Version
		}
		desc := p.Description
		if strings.TrimSpace(desc) == "" {
			desc = "No description available"
		}
		fmt.Fprintf(out, "[%s] %s%s folder=%s status=%s\n    %s\n",
			p.Key,
			p.Name,
			version,
			dashboard.FolderLabel(folders, process.FolderFilter(p.Folder())),
			p.Status(),
			desc,
		)
	}
}
