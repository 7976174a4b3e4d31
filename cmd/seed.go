package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"inventorypro.GO/config"
	itemRepo "inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/seed"
)

var seedCmd = &cobra.Command{
	Use:   "items:seed",
	Short: "Replace the item table with the sample data set",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		store, err := itemRepo.NewGormStore(db)
		if err != nil {
			fmt.Printf("Store init failed: %v\n", err)
			return
		}
		n, err := seed.Load(store)
		if err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			return
		}
		fmt.Printf("Seeded %d items\n", n)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
