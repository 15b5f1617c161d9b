package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"apiprobe/internal/domain"
)

// History records one row per probe run in MySQL, so conformance of a
// deployment can be tracked across runs. It is only active when a DSN
// is configured.
type History struct {
	dsn  string
	open func() (*sql.DB, error)
}

// NewHistory creates a History store for the given MySQL DSN.
func NewHistory(dsn string) *History {
	h := &History{dsn: dsn}
	h.open = h.openMySQL
	return h
}

const createHistoryTable = `CREATE TABLE IF NOT EXISTS probe_runs (
	run_id            VARCHAR(36) PRIMARY KEY,
	base_url          VARCHAR(255) NOT NULL,
	total_checks      INT NOT NULL,
	passed_checks     INT NOT NULL,
	failed_checks     INT NOT NULL,
	failed_assertions INT NOT NULL,
	duration_seconds  DOUBLE NOT NULL,
	created_at        VARCHAR(35) NOT NULL
)`

// Append inserts the run's meta row, creating the table on first use.
func (h *History) Append(report *domain.RunReport) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createHistoryTable); err != nil {
		return fmt.Errorf("create history table: %w", err)
	}

	m := report.Meta
	_, err = db.Exec(
		`INSERT INTO probe_runs (run_id, base_url, total_checks, passed_checks, failed_checks, failed_assertions, duration_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.BaseURL, m.TotalChecks, m.PassedChecks, m.FailedChecks, m.FailedAssertions, m.DurationSeconds, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert history row: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (h *History) List(limit int) ([]domain.RunMeta, error) {
	if limit <= 0 {
		limit = 20
	}

	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT run_id, base_url, total_checks, passed_checks, failed_checks, failed_assertions, duration_seconds, created_at
		 FROM probe_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var m domain.RunMeta
		if err := rows.Scan(&m.RunID, &m.BaseURL, &m.TotalChecks, &m.PassedChecks,
			&m.FailedChecks, &m.FailedAssertions, &m.DurationSeconds, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

func (h *History) openMySQL() (*sql.DB, error) {
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}
	return db, nil
}
