package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
	"centavo/internal/report"
)

// reportService loads a user's collections and runs the aggregation engine
// over them. A user's record counts are small (tens to low hundreds), so the
// dashboard fetches everything and computes in memory on every request.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// GetDashboard fetches the user's expenses, income, and bills concurrently
// and summarizes them for the requested window. Any fetch failure fails the
// whole dashboard: a partial summary silently presented as complete is worse
// than an error state.
func (s *reportService) GetDashboard(ctx context.Context, userID string, rng report.Range, now time.Time) (*report.Summary, error) {
	var (
		expenses []models.Expense
		incomes  []models.Income
		bills    []models.Bill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("occurred_at DESC").
			Find(&expenses).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("occurred_at DESC").
			Find(&incomes).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Where("user_id = ?", userID).
			Order("due_date").
			Find(&bills).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := report.Summarize(expenses, incomes, bills, rng, now)
	return &summary, nil
}
