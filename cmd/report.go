package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"inventorypro.GO/config"
	itemRepo "inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/stats"
	"inventorypro.GO/service/stock"
)

var reportTop int

var reportCmd = &cobra.Command{
	Use:   "items:report",
	Short: "Print inventory summary, reorder candidates and supplier metrics",
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
		items, err := store.List()
		if err != nil {
			fmt.Printf("List failed: %v\n", err)
			return
		}

		s := stats.Compute(items)
		fmt.Printf(`
=== Inventory Report ===
Items:          %d
Units on hand:  %d
Total value:    $%.2f
Average price:  $%.2f
In stock:       %d
Low stock:      %d
Out of stock:   %d
`, s.TotalItems, s.TotalQuantity, s.TotalValue, s.AveragePrice, s.InStockCount, s.LowStockCount, s.OutOfStockCount)

		fmt.Println("\n--- Reorder candidates ---")
		for _, it := range items {
			switch stock.ClassifyItem(it) {
			case stock.StatusLowStock:
				fmt.Printf("  LOW  %-30s qty=%-4d min=%-4d %s\n", it.Name, it.Quantity, it.MinStock, it.Supplier)
			case stock.StatusOutOfStock:
				fmt.Printf("  OUT  %-30s min=%-4d %s\n", it.Name, it.MinStock, it.Supplier)
			}
		}

		fmt.Printf("\n--- Top %d by value ---\n", reportTop)
		for _, it := range stats.TopByValue(items, reportTop) {
			fmt.Printf("  $%-10.2f %s\n", it.TotalValue(), it.Name)
		}

		fmt.Println("\n--- Suppliers ---")
		metrics := stats.BySupplier(items)
		for _, name := range stats.Suppliers(items) {
			m := metrics[name]
			fmt.Printf("  %-20s items=%-3d value=$%-10.2f low=%d out=%d\n",
				m.Name, m.TotalItems, m.TotalValue, m.LowStockCount, m.OutOfStockCount)
		}
	},
}

func init() {
	reportCmd.Flags().IntVarP(&reportTop, "top", "t", 5, "How many top-value items to list")
	rootCmd.AddCommand(reportCmd)
}
