package services

import (
	"context"
	"fmt"
	"legal_case_app_go/models"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedDemoData inserts a small demo practice (one client with a case, a
// deadline, a hearing and a pending fee). It only runs on an empty clients table.
func SeedDemoData(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count clients: %w", err)
	}

	if count > 0 {
		zap.L().Info("Clients already exist, skipping demo seed")
		return nil
	}

	now := Now().In(Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Location)
	dueDate := today.AddDate(0, 0, 5).Add(18 * time.Hour).UTC()
	dueFee := today.AddDate(0, 0, 15).UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client := &models.Client{
			Name:  "Ana Souza",
			Email: stringPtr("ana.souza@example.com"),
			Phone: stringPtr("(11) 98765-4321"),
		}
		if err := tx.Create(client).Error; err != nil {
			return fmt.Errorf("failed to seed client: %w", err)
		}

		c := &models.Case{
			ProcessNumber: "0001234-56.2024.8.26.0100",
			Court:         "tjsp",
			ClientID:      client.ID,
			ActionType:    "Ação Cível",
			Plaintiff:     "Ana Souza",
			Defendant:     "Banco X",
			CaseValue:     decimal.NewNullDecimal(decimal.RequireFromString("15000.00")),
			Status:        models.CaseStatusOngoing,
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("failed to seed case: %w", err)
		}

		children := []interface{}{
			&models.Activity{
				CaseID:   c.ID,
				Type:     models.ActivityTypeDeadline,
				Title:    "Prazo para contestação",
				DueDate:  &dueDate,
				Priority: models.PriorityHigh,
			},
			&models.Hearing{
				CaseID: c.ID,
				Title:  "Audiência de conciliação",
				Date:   today.AddDate(0, 0, 1).Add(14 * time.Hour).UTC(),
				Type:   models.HearingTypeConciliation,
			},
			&models.FinancialRecord{
				CaseID:      c.ID,
				Type:        models.FinancialTypeFee,
				Description: "Honorários iniciais",
				Amount:      decimal.RequireFromString("2500.00"),
				Status:      models.FinancialStatusPending,
				DueDate:     &dueFee,
			},
		}
		for _, child := range children {
			if err := tx.Create(child).Error; err != nil {
				return fmt.Errorf("failed to seed demo records: %w", err)
			}
		}

		zap.L().Info("Demo data seeded", zap.Uint("client_id", client.ID), zap.Uint("case_id", c.ID))
		return nil
	})
}

func stringPtr(s string) *string {
	return &s
}
