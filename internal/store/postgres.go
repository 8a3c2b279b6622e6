package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seenimoa/finscope/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS analysis_reports (
	run_id       TEXT PRIMARY KEY,
	company      TEXT NOT NULL,
	sector       TEXT NOT NULL,
	performance  TEXT NOT NULL DEFAULT '',
	generated_at TIMESTAMPTZ NOT NULL,
	report_json  JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS analysis_reports_company_idx ON analysis_reports (company, generated_at DESC);
`

// PostgresStore stores reports as JSONB rows.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to databaseURL and creates the reports table if
// it does not exist. maxConns <= 0 keeps the pool default.
func NewPostgresStore(ctx context.Context, databaseURL string, maxConns int) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("store: database url not set")
	}
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// SaveReport upserts report by run id.
func (s *PostgresStore) SaveReport(ctx context.Context, report *models.AnalysisReport) error {
	if report == nil || report.Meta.RunID == "" {
		return errors.New("store: report without run id")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO analysis_reports (run_id, company, sector, performance, generated_at, report_json)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (run_id)
		DO UPDATE SET
			company = EXCLUDED.company,
			sector = EXCLUDED.sector,
			performance = EXCLUDED.performance,
			generated_at = EXCLUDED.generated_at,
			report_json = EXCLUDED.report_json;
	`
	m := report.Meta
	_, err = s.pool.Exec(ctx, query, m.RunID, m.Company, m.Sector, string(report.Executive.Performance), m.GeneratedAt, data)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", m.RunID, err)
	}
	return nil
}

// LoadReport reads the report stored under runID.
func (s *PostgresStore) LoadReport(ctx context.Context, runID string) (*models.AnalysisReport, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT report_json FROM analysis_reports WHERE run_id = $1`, runID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report %s: %w", runID, err)
	}

	var report models.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", runID, err)
	}
	return &report, nil
}

// ListReports returns the newest report summaries first.
func (s *PostgresStore) ListReports(ctx context.Context, company string, limit int) ([]Summary, error) {
	query := `
		SELECT run_id, company, sector, performance, generated_at
		FROM analysis_reports
		WHERE ($1 = '' OR company = $1)
		ORDER BY generated_at DESC, run_id
	`
	args := []any{company}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Summary, error) {
		var sum Summary
		var perf string
		err := row.Scan(&sum.RunID, &sum.Company, &sum.Sector, &perf, &sum.GeneratedAt)
		sum.Performance = models.Tier(perf)
		return sum, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports: %w", err)
	}
	return out, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
