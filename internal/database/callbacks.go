package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks that time every query
// and report it to the metrics recorder
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	markStart := func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	}
	report := func(operation string) func(*gorm.DB) {
		return func(db *gorm.DB) {
			startTime, ok := db.InstanceGet("query_start_time")
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
		}
	}

	db.Callback().Query().Before("gorm:query").Register("metrics:select_before", markStart)
	db.Callback().Query().After("gorm:query").Register("metrics:select_after", report("select"))

	db.Callback().Create().Before("gorm:create").Register("metrics:insert_before", markStart)
	db.Callback().Create().After("gorm:create").Register("metrics:insert_after", report("insert"))

	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", markStart)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", report("update"))

	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", markStart)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", report("delete"))
}

// StartDBStatsCollector starts periodic collection of connection pool stats.
// Closing the returned channel stops the collector.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
