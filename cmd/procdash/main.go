package main

import (
	"log"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "procdash [command]",
	Short: "procdash: browse and start automation processes",
	Long: `procdash lists the automation processes published to an orchestrator (or a local catalog),
filters and sorts them, and starts them after an explicit confirmation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
