package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	"github.com/settleline/bizledger/internal/models"
	"github.com/settleline/bizledger/internal/utils/mapping"
)

// PgxSettlementRepository executes settlement units. Every method is one
// database transaction built around a conditional status transition: the
// UPDATE names the expected pre-settlement status, so of any number of
// concurrent settlers exactly one advances the document and applies the side
// effects; the rest match no row and come back with ErrConflict.
type PgxSettlementRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

func newPgxSettlementRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxSettlementRepository {
	return &PgxSettlementRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// notFoundOrConflict discriminates a failed conditional update: the document
// either does not exist in the tenant (ErrNotFound) or its status already
// advanced (ErrConflict).
func (r *PgxSettlementRepository) notFoundOrConflict(ctx context.Context, tx pgx.Tx, table string, idColumn string, tenantID string, id string) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE tenant_id = $1 AND %s = $2);`, table, idColumn)
	if err := tx.QueryRow(ctx, query, tenantID, id).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check document existence", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, table, id)
	}
	return fmt.Errorf("%w: %s %s", apperrors.ErrConflict, table, id)
}

// transitionTransactionTx flips a pending transaction's status inside tx and
// returns the updated row.
func (r *PgxSettlementRepository) transitionTransactionTx(ctx context.Context, tx pgx.Tx, tenantID string, transactionID string, to domain.TransactionStatus, userID string, now time.Time) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND transaction_id = $2 AND status = $6
		RETURNING ` + transactionColumns + `;
	`
	m, err := scanTransaction(tx.QueryRow(ctx, query,
		tenantID, transactionID, models.TransactionStatus(to), now, userID,
		models.TransactionStatus(domain.TransactionPending)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFoundOrConflict(ctx, tx, "transactions", "transaction_id", tenantID, transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to transition transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ApproveTransaction flips PENDING -> PAID and, when an account is
// referenced, increments its balance by the signed amount. The status flip
// runs first so a concurrent approval loses before any balance is touched.
func (r *PgxSettlementRepository) ApproveTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := r.transitionTransactionTx(ctx, tx, tenantID, transactionID, domain.TransactionPaid, userID, now)
	if err != nil {
		return nil, err
	}

	if txn.AccountID != nil {
		if _, err := r.accountRepo.findAccountForUpdateTx(ctx, tx, tenantID, *txn.AccountID); err != nil {
			return nil, err
		}
		if err := r.accountRepo.incrementAccountBalanceTx(ctx, tx, tenantID, *txn.AccountID, txn.SignedAmount(), userID, now); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return txn, nil
}

// RejectTransaction flips PENDING -> REJECTED with no balance effect.
func (r *PgxSettlementRepository) RejectTransaction(ctx context.Context, tenantID string, transactionID string, userID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	txn, err := r.transitionTransactionTx(ctx, tx, tenantID, transactionID, domain.TransactionRejected, userID, now)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return txn, nil
}

// ApproveOrder re-checks every line against live stock under row locks,
// decrements all lines, credits the tenant's sales revenue account and
// records the sale as a PAID transaction, then flips PROCESSING -> COMPLETED.
// Any shortfall aborts the whole unit with nothing written.
func (r *PgxSettlementRepository) ApproveOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	order, err := r.transitionOrderTx(ctx, tx, tenantID, orderID, domain.OrderCompleted, userID, now)
	if err != nil {
		return nil, err
	}

	lines, err := r.findOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	// Aggregate per stock item; an order may reference the same item on
	// several lines.
	required := make(map[string]int64)
	for _, line := range lines {
		required[line.StockItemID] += line.Quantity
	}

	locked, err := r.lockStockItemsTx(ctx, tx, tenantID, required)
	if err != nil {
		return nil, err
	}

	for stockItemID, qty := range required {
		item, ok := locked[stockItemID]
		if !ok {
			return nil, fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, stockItemID)
		}
		if item.Quantity < qty {
			return nil, &apperrors.InsufficientStockError{
				ItemName:  item.Name,
				SKU:       item.SKU,
				Available: item.Quantity,
				Requested: qty,
			}
		}
	}

	batch := &pgx.Batch{}
	decrementQuery := `
		UPDATE stock_items
		SET quantity = quantity - $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND stock_item_id = $2 AND quantity >= $3;
	`
	stockItemIDs := make([]string, 0, len(required))
	for stockItemID := range required {
		stockItemIDs = append(stockItemIDs, stockItemID)
		batch.Queue(decrementQuery, tenantID, stockItemID, required[stockItemID], now, userID)
	}
	br := tx.SendBatch(ctx, batch)
	for _, stockItemID := range stockItemIDs {
		ct, err := br.Exec()
		if err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to decrement stock for item "+stockItemID, err)
		}
		if ct.RowsAffected() == 0 {
			br.Close()
			item := locked[stockItemID]
			return nil, &apperrors.InsufficientStockError{
				ItemName:  item.Name,
				SKU:       item.SKU,
				Available: item.Quantity,
				Requested: required[stockItemID],
			}
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to execute stock decrement batch", err)
	}

	// Credit the revenue account and record the sale in the ledger.
	revenueAccount, err := r.accountRepo.findOrCreateRevenueAccountTx(ctx, tx, tenantID, userID, now)
	if err != nil {
		return nil, err
	}
	if err := r.accountRepo.incrementAccountBalanceTx(ctx, tx, tenantID, revenueAccount.AccountID, order.TotalAmount, userID, now); err != nil {
		return nil, err
	}

	saleTxn := mapping.ToModelTransaction(domain.Transaction{
		TransactionID: uuid.NewString(),
		TenantID:      tenantID,
		Description:   "Sale: order " + order.OrderNumber,
		Amount:        order.TotalAmount,
		Kind:          domain.Income,
		Category:      "Sales",
		EffectiveDate: now,
		AccountID:     &revenueAccount.AccountID,
		Status:        domain.TransactionPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	})
	insertTxnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	if _, err := tx.Exec(ctx, insertTxnQuery,
		saleTxn.TransactionID, saleTxn.TenantID, saleTxn.Description, saleTxn.Amount,
		saleTxn.Kind, saleTxn.Category, saleTxn.EffectiveDate, saleTxn.AccountID,
		saleTxn.Status, saleTxn.GatewayRef, saleTxn.CreatedAt, saleTxn.CreatedBy,
		saleTxn.LastUpdatedAt, saleTxn.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to record sale transaction for order "+orderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return order, nil
}

// RejectOrder flips PROCESSING -> CANCELLED with no stock effect.
func (r *PgxSettlementRepository) RejectOrder(ctx context.Context, tenantID string, orderID string, userID string, now time.Time) (*domain.Order, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	order, err := r.transitionOrderTx(ctx, tx, tenantID, orderID, domain.OrderCancelled, userID, now)
	if err != nil {
		return nil, err
	}
	lines, err := r.findOrderLinesTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PgxSettlementRepository) transitionOrderTx(ctx context.Context, tx pgx.Tx, tenantID string, orderID string, to domain.OrderStatus, userID string, now time.Time) (*domain.Order, error) {
	query := `
		UPDATE orders
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND order_id = $2 AND status = $6
		RETURNING ` + orderColumns + `;
	`
	m, err := scanOrder(tx.QueryRow(ctx, query,
		tenantID, orderID, models.OrderStatus(to), now, userID,
		models.OrderStatus(domain.OrderProcessing)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFoundOrConflict(ctx, tx, "orders", "order_id", tenantID, orderID)
		}
		return nil, apperrors.NewAppError(500, "failed to transition order "+orderID, err)
	}
	order := mapping.ToDomainOrder(m)
	return &order, nil
}

func (r *PgxSettlementRepository) findOrderLinesTx(ctx context.Context, tx pgx.Tx, orderID string) ([]domain.OrderLine, error) {
	query := `
		SELECT ` + orderLineColumns + `
		FROM order_lines
		WHERE order_id = $1
		ORDER BY order_line_id;
	`
	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query order lines for order "+orderID, err)
	}
	defer rows.Close()

	var ms []models.OrderLine
	for rows.Next() {
		var m models.OrderLine
		if err := rows.Scan(&m.OrderLineID, &m.OrderID, &m.StockItemID, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order line row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order line rows", err)
	}

	return mapping.ToDomainOrderLineSlice(ms), nil
}

// lockStockItemsTx locks the referenced stock rows in a deterministic order
// so concurrent order settlements cannot deadlock.
func (r *PgxSettlementRepository) lockStockItemsTx(ctx context.Context, tx pgx.Tx, tenantID string, required map[string]int64) (map[string]domain.StockItem, error) {
	stockItemIDs := make([]string, 0, len(required))
	for stockItemID := range required {
		stockItemIDs = append(stockItemIDs, stockItemID)
	}

	query := `
		SELECT ` + stockColumns + `
		FROM stock_items
		WHERE tenant_id = $1 AND stock_item_id = ANY($2)
		ORDER BY stock_item_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, tenantID, stockItemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock stock items", err)
	}
	defer rows.Close()

	locked := make(map[string]domain.StockItem, len(required))
	for rows.Next() {
		m, err := scanStockItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock item row", err)
		}
		locked[m.StockItemID] = mapping.ToDomainStockItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock item rows", err)
	}

	return locked, nil
}

// ApprovePayrollRun flips PENDING -> PAID and stamps the payment date.
func (r *PgxSettlementRepository) ApprovePayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payroll_runs
		SET status = $3, payment_date = $4, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND payroll_run_id = $2 AND status = $6
		RETURNING ` + payrollColumns + `;
	`
	m, err := scanPayrollRun(tx.QueryRow(ctx, query,
		tenantID, payrollRunID, models.PayrollStatus(domain.PayrollPaid), now, userID,
		models.PayrollStatus(domain.PayrollPending)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFoundOrConflict(ctx, tx, "payroll_runs", "payroll_run_id", tenantID, payrollRunID)
		}
		return nil, apperrors.NewAppError(500, "failed to approve payroll run "+payrollRunID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	run := mapping.ToDomainPayrollRun(m)
	return &run, nil
}

// RejectPayrollRun flips PENDING -> REJECTED.
func (r *PgxSettlementRepository) RejectPayrollRun(ctx context.Context, tenantID string, payrollRunID string, userID string, now time.Time) (*domain.PayrollRun, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payroll_runs
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND payroll_run_id = $2 AND status = $6
		RETURNING ` + payrollColumns + `;
	`
	m, err := scanPayrollRun(tx.QueryRow(ctx, query,
		tenantID, payrollRunID, models.PayrollStatus(domain.PayrollRejected), now, userID,
		models.PayrollStatus(domain.PayrollPending)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFoundOrConflict(ctx, tx, "payroll_runs", "payroll_run_id", tenantID, payrollRunID)
		}
		return nil, apperrors.NewAppError(500, "failed to reject payroll run "+payrollRunID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	run := mapping.ToDomainPayrollRun(m)
	return &run, nil
}

// ApprovePurchaseOrder flips PENDING -> APPROVED.
func (r *PgxSettlementRepository) ApprovePurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error) {
	return r.transitionPurchaseOrder(ctx, tenantID, purchaseOrderID, domain.PurchaseOrderApproved, userID, now)
}

// RejectPurchaseOrder flips PENDING -> CANCELLED.
func (r *PgxSettlementRepository) RejectPurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, userID string, now time.Time) (*domain.PurchaseOrder, error) {
	return r.transitionPurchaseOrder(ctx, tenantID, purchaseOrderID, domain.PurchaseOrderCancelled, userID, now)
}

func (r *PgxSettlementRepository) transitionPurchaseOrder(ctx context.Context, tenantID string, purchaseOrderID string, to domain.PurchaseOrderStatus, userID string, now time.Time) (*domain.PurchaseOrder, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE purchase_orders
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND purchase_order_id = $2 AND status = $6
		RETURNING ` + purchaseOrderColumns + `;
	`
	m, err := scanPurchaseOrder(tx.QueryRow(ctx, query,
		tenantID, purchaseOrderID, models.PurchaseOrderStatus(to), now, userID,
		models.PurchaseOrderStatus(domain.PurchaseOrderPending)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFoundOrConflict(ctx, tx, "purchase_orders", "purchase_order_id", tenantID, purchaseOrderID)
		}
		return nil, apperrors.NewAppError(500, "failed to transition purchase order "+purchaseOrderID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	po := mapping.ToDomainPurchaseOrder(m)
	return &po, nil
}
