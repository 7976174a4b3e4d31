package jobs

import (
	"log"
	"sync"

	"inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/stats"
	"inventorypro.GO/service/stock"
)

var (
	storeMu sync.RWMutex
	store   item.Store
)

// SetStore injects the item store the jobs run against. Called once at
// startup; jobs are no-ops until then. (The jobs package cannot import
// config: config.CronJobs references this package.)
func SetStore(s item.Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

func getStore() item.Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// LowStockReportJob logs every item at or below its reorder threshold
// plus the headline counts. Wired in config.CronJobs.
func LowStockReportJob(args ...string) {
	s := getStore()
	if s == nil {
		log.Println("[lowstockreport] no store configured, skipping")
		return
	}
	items, err := s.List()
	if err != nil {
		log.Printf("[lowstockreport] list items: %v", err)
		return
	}

	summary := stats.Compute(items)
	log.Printf("[lowstockreport] items=%d low=%d out=%d", summary.TotalItems, summary.LowStockCount, summary.OutOfStockCount)
	for _, it := range items {
		switch stock.ClassifyItem(it) {
		case stock.StatusLowStock:
			log.Printf("[lowstockreport] LOW  %s (qty=%d, min=%d, supplier=%s)", it.Name, it.Quantity, it.MinStock, it.Supplier)
		case stock.StatusOutOfStock:
			log.Printf("[lowstockreport] OUT  %s (supplier=%s)", it.Name, it.Supplier)
		}
	}
}
