package services

import (
	"bytes"
	"context"
	"fmt"
	"legal_case_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// StatusCount is the number of cases in one status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CountCasesByStatus returns a count for every case status, zeros included,
// in the order of models.CaseStatuses
func CountCasesByStatus(ctx context.Context, db *gorm.DB) ([]StatusCount, error) {
	var rows []StatusCount
	if err := db.WithContext(ctx).Model(&models.Case{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, classify("count cases by status", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}

	result := make([]StatusCount, 0, len(models.CaseStatuses))
	for _, status := range models.CaseStatuses {
		result = append(result, StatusCount{Status: status, Count: counts[status]})
	}
	return result, nil
}

const (
	sheetCases     = "Cases"
	sheetDeadlines = "Deadlines"
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// BuildCasesWorkbook exports every case with its client to an xlsx workbook
func BuildCasesWorkbook(ctx context.Context, db *gorm.DB) (*bytes.Buffer, error) {
	cases, err := ListCasesWithClient(ctx, db)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetCases)

	headers := []string{"Process Number", "Court", "Client", "Action Type", "Plaintiff", "Defendant", "Status", "Case Value", "Updated At"}
	if err := writeHeader(f, sheetCases, headers); err != nil {
		return nil, err
	}

	for i, c := range cases {
		value := ""
		if c.CaseValue.Valid {
			value = c.CaseValue.Decimal.StringFixed(2)
		}
		row := []interface{}{
			c.ProcessNumber,
			c.Court,
			c.ClientName(),
			c.ActionType,
			c.Plaintiff,
			c.Defendant,
			c.Status,
			value,
			c.UpdatedAt.In(Location).Format(dateTimeLayout),
		}
		if err := writeRow(f, sheetCases, i+2, row); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(sheetCases, "A", "A", 30)
	f.SetColWidth(sheetCases, "B", "I", 18)
	return workbookBuffer(f)
}

// BuildDeadlinesWorkbook exports the open deadlines of the next 30 days
func BuildDeadlinesWorkbook(ctx context.Context, db *gorm.DB) (*bytes.Buffer, error) {
	var activities []models.Activity
	if err := openDeadlines(db.WithContext(ctx), Now(), DeadlineListWindow).
		Preload("Case").
		Order("activities.due_date ASC, activities.id ASC").
		Find(&activities).Error; err != nil {
		return nil, classify("list deadlines for export", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetDeadlines)

	headers := []string{"Due Date", "Title", "Priority", "Process Number", "Description"}
	if err := writeHeader(f, sheetDeadlines, headers); err != nil {
		return nil, err
	}

	for i, a := range activities {
		processNumber := ""
		if a.Case != nil {
			processNumber = a.Case.ProcessNumber
		}
		description := ""
		if a.Description != nil {
			description = *a.Description
		}
		row := []interface{}{
			a.DueDate.In(Location).Format(dateLayout),
			a.Title,
			a.Priority,
			processNumber,
			description,
		}
		if err := writeRow(f, sheetDeadlines, i+2, row); err != nil {
			return nil, err
		}
	}

	f.SetColWidth(sheetDeadlines, "A", "A", 14)
	f.SetColWidth(sheetDeadlines, "B", "E", 30)
	return workbookBuffer(f)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func workbookBuffer(f *excelize.File) (*bytes.Buffer, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
