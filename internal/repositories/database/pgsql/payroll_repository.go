package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
)

type PgxPayrollRepository struct {
	pool *pgxpool.Pool
}

func newPgxPayrollRepository(pool *pgxpool.Pool) *PgxPayrollRepository {
	return &PgxPayrollRepository{pool: pool}
}

const payrollColumns = `payroll_run_id, tenant_id, period, amount, status, payment_date, created_at, created_by, last_updated_at, last_updated_by`

func scanPayrollRun(row pgx.Row) (models.PayrollRun, error) {
	var m models.PayrollRun
	err := row.Scan(
		&m.PayrollRunID,
		&m.TenantID,
		&m.Period,
		&m.Amount,
		&m.Status,
		&m.PaymentDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayrollRun inserts a new payroll run.
func (r *PgxPayrollRepository) SavePayrollRun(ctx context.Context, run domain.PayrollRun) error {
	m := mapping.ToModelPayrollRun(run)

	query := `
		INSERT INTO payroll_runs (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PayrollRunID,
		m.TenantID,
		m.Period,
		m.Amount,
		m.Status,
		m.PaymentDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payroll run %s", apperrors.ErrDuplicate, m.PayrollRunID)
		}
		return apperrors.NewAppError(500, "failed to insert payroll run "+m.PayrollRunID, err)
	}
	return nil
}

// FindPayrollRunByID retrieves a payroll run scoped by tenant.
func (r *PgxPayrollRepository) FindPayrollRunByID(ctx context.Context, tenantID string, payrollRunID string) (*domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE tenant_id = $1 AND payroll_run_id = $2;
	`
	m, err := scanPayrollRun(r.pool.QueryRow(ctx, query, tenantID, payrollRunID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payroll run %s", apperrors.ErrNotFound, payrollRunID)
		}
		return nil, apperrors.NewAppError(500, "failed to query payroll run "+payrollRunID, err)
	}
	run := mapping.ToDomainPayrollRun(m)
	return &run, nil
}

// ListPayrollRuns retrieves a paginated list of payroll runs for the tenant.
func (r *PgxPayrollRepository) ListPayrollRuns(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE tenant_id = $1
		ORDER BY created_at DESC, payroll_run_id
		LIMIT $2 OFFSET $3;
	`
	return r.queryPayrollRuns(ctx, query, tenantID, limit, offset)
}

// ListPendingPayrollRuns retrieves every payroll run awaiting settlement.
func (r *PgxPayrollRepository) ListPendingPayrollRuns(ctx context.Context, tenantID string) ([]domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		WHERE tenant_id = $1 AND status = $2
		ORDER BY created_at DESC, payroll_run_id;
	`
	return r.queryPayrollRuns(ctx, query, tenantID, models.PayrollStatus(domain.PayrollPending))
}

func (r *PgxPayrollRepository) queryPayrollRuns(ctx context.Context, query string, args ...any) ([]domain.PayrollRun, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list payroll runs", err)
	}
	defer rows.Close()

	var runs []domain.PayrollRun
	for rows.Next() {
		m, err := scanPayrollRun(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payroll run row", err)
		}
		runs = append(runs, mapping.ToDomainPayrollRun(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payroll run rows", err)
	}

	return runs, nil
}
