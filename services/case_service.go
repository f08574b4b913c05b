package services

import (
	"context"
	"errors"
	"fmt"
	"legal_case_app_go/models"
	"legal_case_app_go/schema"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// casesWithClient selects cases left-joined with their client.
// A case whose client row is gone comes back with a nil Client.
func casesWithClient(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Case{}).Joins("Client").Order("cases.updated_at DESC, cases.id DESC")
}

// ListCasesWithClient returns every case with its client, most recently updated first
func ListCasesWithClient(ctx context.Context, db *gorm.DB) ([]models.Case, error) {
	list := []models.Case{}
	if err := casesWithClient(db.WithContext(ctx)).Find(&list).Error; err != nil {
		return nil, classify("list cases", err)
	}
	return list, nil
}

// ListCasesByClient returns the cases owned by one client
func ListCasesByClient(ctx context.Context, db *gorm.DB, clientID uint) ([]models.Case, error) {
	list := []models.Case{}
	if err := casesWithClient(db.WithContext(ctx)).
		Where("cases.client_id = ?", clientID).
		Find(&list).Error; err != nil {
		return nil, classify("list cases by client", err)
	}
	return list, nil
}

// SearchCases matches text case-insensitively against the process number,
// plaintiff, defendant or client name. Results are not ranked.
//
// Matching happens in Go with Unicode case folding because SQLite's LOWER
// only folds ASCII letters ("Érica" would never match "érica").
func SearchCases(ctx context.Context, db *gorm.DB, text string) ([]models.Case, error) {
	needle := foldCase(strings.TrimSpace(text))

	all := []models.Case{}
	if err := casesWithClient(db.WithContext(ctx)).Find(&all).Error; err != nil {
		return nil, classify("search cases", err)
	}

	matches := []models.Case{}
	for i := range all {
		if caseMatches(&all[i], needle) {
			matches = append(matches, all[i])
		}
	}
	return matches, nil
}

func caseMatches(c *models.Case, needle string) bool {
	for _, field := range []string{c.ProcessNumber, c.Plaintiff, c.Defendant, c.ClientName()} {
		if strings.Contains(foldCase(field), needle) {
			return true
		}
	}
	return false
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}

// GetCase fetches a case and its client
func GetCase(ctx context.Context, db *gorm.DB, id uint) (*models.Case, error) {
	var c models.Case
	err := db.WithContext(ctx).Joins("Client").First(&c, "cases.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("case")
		}
		return nil, classify("get case", err)
	}
	return &c, nil
}

// GetCaseWithRelations loads a case, its client and every child record.
// The child tables are queried concurrently.
func GetCaseWithRelations(ctx context.Context, db *gorm.DB, id uint) (*models.CaseWithRelations, error) {
	c, err := GetCase(ctx, db, id)
	if err != nil {
		return nil, err
	}

	result := &models.CaseWithRelations{Case: *c}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result.Activities, err = ListActivitiesByCase(gctx, db, id)
		return err
	})
	g.Go(func() error {
		var err error
		result.Hearings, err = ListHearingsByCase(gctx, db, id)
		return err
	})
	g.Go(func() error {
		var err error
		result.Documents, err = ListDocumentsByCase(gctx, db, id)
		return err
	})
	g.Go(func() error {
		var err error
		result.Financial, err = ListFinancialByCase(gctx, db, id)
		return err
	})
	g.Go(func() error {
		var err error
		result.Communications, err = ListCommunicationsByCase(gctx, db, id)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateCase stores a new case after checking its client and process number
func CreateCase(ctx context.Context, db *gorm.DB, c *models.Case) (*models.Case, error) {
	created, err := createRecord(ctx, db, "case", c, func(tx *gorm.DB) error {
		if err := requireClient(tx, c.ClientID); err != nil {
			return err
		}
		return requireUniqueProcessNumber(tx, c.ProcessNumber, 0)
	})
	if err != nil {
		return nil, err
	}
	return GetCase(ctx, db, created.ID)
}

// UpdateCase applies a partial update and always refreshes updatedAt
func UpdateCase(ctx context.Context, db *gorm.DB, id uint, patch schema.Patch) (*models.Case, error) {
	_, err := updateRecord(ctx, db, "case", id, patch, func(tx *gorm.DB, current *models.Case, values map[string]interface{}) error {
		if clientID, ok := patchedID(patch, "ClientID"); ok {
			if err := requireClient(tx, clientID); err != nil {
				return err
			}
		}
		if number, ok := patch["ProcessNumber"].(string); ok {
			if err := requireUniqueProcessNumber(tx, number, id); err != nil {
				return err
			}
		}

		// Two updates within the same clock tick must still move updatedAt forward
		now := Now().UTC()
		if !now.After(current.UpdatedAt) {
			now = current.UpdatedAt.Add(time.Microsecond)
		}
		values["UpdatedAt"] = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetCase(ctx, db, id)
}

// DeleteCase removes a case that has no child records
func DeleteCase(ctx context.Context, db *gorm.DB, id uint) error {
	return deleteRecord[models.Case](ctx, db, "case", id,
		dependent{model: &models.Activity{}, column: "case_id", label: "activities"},
		dependent{model: &models.Hearing{}, column: "case_id", label: "hearings"},
		dependent{model: &models.Document{}, column: "case_id", label: "documents"},
		dependent{model: &models.FinancialRecord{}, column: "case_id", label: "financial records"},
		dependent{model: &models.Communication{}, column: "case_id", label: "communications"},
	)
}

func requireUniqueProcessNumber(tx *gorm.DB, number string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.Case{}).
		Where("process_number = ? AND id <> ?", number, exceptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConstraintError{
			Constraint: ConstraintUnique,
			Message:    fmt.Sprintf("process number %s is already registered", number),
		}
	}
	return nil
}
