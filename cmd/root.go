package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inventorypro",
	Short: "InventoryPro backend CLI",
	Long:  "Inventory tracking backend: seed data, stock reports and the cron scheduler.",
}

// Execute runs the CLI. Applies init()-registered commands first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
