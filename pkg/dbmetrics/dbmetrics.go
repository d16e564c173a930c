package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// StatsSource источник статистики пула соединений (*sql.DB)
type StatsSource interface {
	Stats() sql.DBStats
}

// StatsSink получатель статистики (*metrics.Metrics)
type StatsSink interface {
	SetDBStats(stats sql.DBStats)
}

// DefaultCollectInterval период сбора статистики пула
const DefaultCollectInterval = 15 * time.Second

// CollectPoolStats периодически публикует статистику пула, пока не закрыт stopCh
func CollectPoolStats(db StatsSource, sink StatsSink, interval time.Duration, stopCh <-chan struct{}) {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}

	sink.SetDBStats(db.Stats())

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sink.SetDBStats(db.Stats())
			case <-stopCh:
				return
			}
		}
	}()
}
