package config

import (
	"inventorypro.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"lowstockreport": {Schedule: "0 * * * *", Job: jobs.LowStockReportJob},
	// Add more jobs here
}
