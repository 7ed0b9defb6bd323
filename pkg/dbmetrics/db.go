// Package dbmetrics оборачивает *sql.DB и собирает метрики запросов и пула соединений
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/hmax24/beauty-salon/pkg/metrics"
)

// DefaultStatsInterval период опроса sql.DBStats
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс *sql.DB и *DB, с которым работают репозитории
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// QueryObserver получатель метрик по запросам
type QueryObserver interface {
	ObserveDBQuery(operation string, err error, duration time.Duration)
}

// DB обёртка над *sql.DB, замеряющая время каждого запроса
type DB struct {
	db       *sql.DB
	observer QueryObserver
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, observer QueryObserver) *DB {
	return &DB{db: db, observer: observer}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с интервалом DefaultStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, poolName string, stopCh <-chan struct{}) *DB {
	go collectPoolStats(db, m, poolName, DefaultStatsInterval, stopCh)
	return Wrap(db, m)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observer.ObserveDBQuery(operation(query), err, time.Since(start))
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observer.ObserveDBQuery(operation(query), err, time.Since(start))
	return rows, err
}

// QueryRowContext ошибка sql.Row становится известна только на Scan,
// поэтому здесь учитывается лишь время отправки запроса
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observer.ObserveDBQuery(operation(query), row.Err(), time.Since(start))
	return row
}

// PingContext проверка соединения для /healthz
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// operation первое слово запроса в нижнем регистре: select, insert, ...
func operation(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexAny(q, " \n\t"); i > 0 {
		q = q[:i]
	}
	if q == "" {
		return "unknown"
	}
	return strings.ToLower(q)
}

func collectPoolStats(db *sql.DB, m *metrics.Metrics, poolName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.DBOpenConnections.WithLabelValues(poolName).Set(float64(stats.OpenConnections))
			m.DBInUse.WithLabelValues(poolName).Set(float64(stats.InUse))
			m.DBIdle.WithLabelValues(poolName).Set(float64(stats.Idle))
			m.DBWaitCount.WithLabelValues(poolName).Set(float64(stats.WaitCount))
		}
	}
}
