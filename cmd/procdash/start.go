package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"procdash/internal/app"
	"procdash/internal/process"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	startFolder  string
	startYes     bool
	startTimeout int
)

// stdinIsTerminal gates the interactive prompt; tests replace it.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	rootCmd.AddCommand(cmdStart)

	cmdStart.Flags().StringVarP(&startFolder, "folder", "f", "all", `Folder to look the key up in, or "all"`)
	cmdStart.Flags().BoolVarP(&startYes, "yes", "y", false, "Skip the confirmation prompt")
	cmdStart.Flags().IntVar(&startTimeout, "timeout", 0, "Timeout in seconds (default: request_timeout from config)")
}

var cmdStart = &cobra.Command{
	Use:   "start <process-key>",
	Short: "Start a process after confirmation",
	Long: `Looks the process up by key and asks for confirmation before dispatching a start
to its folder. Use --yes to skip the prompt in scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := process.ParseFolderFilter(startFolder)
		if err != nil {
			return err
		}
		ctrl := controller()
		timeout := requestTimeout(ctrl, startTimeout)

		p, err := ctrl.Resolve(cmd.Context(), app.StartParams{Key: args[0], Folder: folder, Timeout: timeout})
		if err != nil {
			return err
		}

		var wf process.Workflow
		wf.Request(p)
		if !startYes {
			if !stdinIsTerminal() {
				wf.Cancel()
				return errors.New("refusing to start without confirmation; re-run with --yes")
			}
			ok, err := askConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), wf.Confirmation().Prompt())
			if err != nil {
				return err
			}
			if !ok {
				wf.Cancel()
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}
		req, _ := wf.Confirm()

		var spin *spinner.Spinner
		if stdinIsTerminal() {
			spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			spin.Suffix = " Starting " + p.Name + "..."
			spin.Start()
		}
		job, err := ctrl.Dispatch(cmd.Context(), req, timeout)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return fmt.Errorf("failed to start process: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Started %s (%s) in folder %d, job %s [%s]\n",
			p.Name, req.Key, req.FolderID, job.ID, job.State)
		return nil
	},
}

// askConfirm prints prompt and reads a y/N answer.
func askConfirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
