package services

import (
	"context"
	"legal_case_app_go/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardStats summarises the practice for the home screen
type DashboardStats struct {
	ActiveProcesses   int64  `json:"activeProcesses"`
	UpcomingDeadlines int64  `json:"upcomingDeadlines"`
	TodayHearings     int64  `json:"todayHearings"`
	PendingFees       string `json:"pendingFees"`
}

// GetDashboardStats computes the four dashboard figures concurrently.
// upcomingDeadlines looks 7 days ahead, unlike the 30-day deadline list.
func GetDashboardStats(ctx context.Context, db *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := db.WithContext(gctx).Model(&models.Case{}).
			Where("status = ?", models.CaseStatusOngoing).
			Count(&stats.ActiveProcesses).Error
		return classify("count active cases", err)
	})
	g.Go(func() error {
		var err error
		stats.UpcomingDeadlines, err = CountUpcomingDeadlines(gctx, db, DashboardDeadlineWindow)
		return err
	})
	g.Go(func() error {
		err := todayHearings(db.WithContext(gctx)).Count(&stats.TodayHearings).Error
		return classify("count today's hearings", err)
	})
	g.Go(func() error {
		var err error
		stats.PendingFees, err = SumPendingFees(gctx, db)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
