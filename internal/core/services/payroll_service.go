package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/settleline/bizledger/internal/apperrors"
	"github.com/settleline/bizledger/internal/core/domain"
	portsrepo "github.com/settleline/bizledger/internal/core/ports/repositories"
	"github.com/settleline/bizledger/internal/dto"
	"github.com/settleline/bizledger/internal/middleware"
)

type PayrollService struct {
	payrollRepo portsrepo.PayrollRunRepositoryFacade
}

func NewPayrollService(repo portsrepo.PayrollRunRepositoryFacade) *PayrollService {
	return &PayrollService{payrollRepo: repo}
}

func (s *PayrollService) CreatePayrollRun(ctx context.Context, tenantID string, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	run := domain.PayrollRun{
		PayrollRunID: uuid.NewString(),
		TenantID:     tenantID,
		Period:       req.Period,
		Amount:       req.Amount,
		Status:       domain.PayrollPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.payrollRepo.SavePayrollRun(ctx, run); err != nil {
		logger.Error("Failed to save payroll run in repository", slog.String("error", err.Error()), slog.String("payroll_run_id", run.PayrollRunID))
		return nil, err
	}

	logger.Info("Payroll run created", slog.String("payroll_run_id", run.PayrollRunID), slog.String("period", run.Period))
	return &run, nil
}

func (s *PayrollService) GetPayrollRunByID(ctx context.Context, tenantID string, payrollRunID string) (*domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	run, err := s.payrollRepo.FindPayrollRunByID(ctx, tenantID, payrollRunID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find payroll run in repository", slog.String("error", err.Error()), slog.String("payroll_run_id", payrollRunID))
		}
		return nil, err
	}
	return run, nil
}

func (s *PayrollService) ListPayrollRuns(ctx context.Context, tenantID string, limit int, offset int) ([]domain.PayrollRun, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	runs, err := s.payrollRepo.ListPayrollRuns(ctx, tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list payroll runs from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	if runs == nil {
		return []domain.PayrollRun{}, nil
	}
	return runs, nil
}
