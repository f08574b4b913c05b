package schema

import (
	"legal_case_app_go/models"
	"time"

	"github.com/shopspring/decimal"
)

// ClientInput is the accepted shape of a client payload
type ClientInput struct {
	Name     *string `json:"name" validate:"required,min=1"`
	Email    *string `json:"email" validate:"omitempty,email" nullable:"true"`
	Phone    *string `json:"phone" nullable:"true"`
	Document *string `json:"document" nullable:"true"`
	Address  *string `json:"address" nullable:"true"`
	Notes    *string `json:"notes" nullable:"true" sanitize:"true"`
}

// CaseInput is the accepted shape of a case payload
type CaseInput struct {
	ProcessNumber *string          `json:"processNumber" validate:"required,min=1"`
	Court         *string          `json:"court" validate:"required,min=1"`
	ClientID      *uint            `json:"clientId" validate:"required,gt=0"`
	ActionType    *string          `json:"actionType" validate:"required"`
	Plaintiff     *string          `json:"plaintiff" validate:"required"`
	Defendant     *string          `json:"defendant" validate:"required"`
	CaseValue     *decimal.Decimal `json:"caseValue" validate:"omitempty,nonnegative,money" nullable:"true"`
	Status        *string          `json:"status" validate:"omitempty,casestatus"`
	Description   *string          `json:"description" nullable:"true" sanitize:"true"`
	Notes         *string          `json:"notes" nullable:"true" sanitize:"true"`
}

// ActivityInput is the accepted shape of an activity payload
type ActivityInput struct {
	CaseID      *uint      `json:"caseId" validate:"required,gt=0"`
	Type        *string    `json:"type" validate:"required,activitytype"`
	Title       *string    `json:"title" validate:"required,min=1"`
	Description *string    `json:"description" nullable:"true" sanitize:"true"`
	DueDate     *time.Time `json:"dueDate" nullable:"true"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" validate:"omitempty,priority"`
}

// HearingInput is the accepted shape of a hearing payload
type HearingInput struct {
	CaseID    *uint      `json:"caseId" validate:"required,gt=0"`
	Title     *string    `json:"title" validate:"required,min=1"`
	Date      *time.Time `json:"date" validate:"required"`
	Location  *string    `json:"location" nullable:"true"`
	Type      *string    `json:"type" validate:"required,hearingtype"`
	Notes     *string    `json:"notes" nullable:"true" sanitize:"true"`
	Completed *bool      `json:"completed"`
}

// DocumentInput is the accepted shape of a document payload
type DocumentInput struct {
	CaseID   *uint   `json:"caseId" validate:"required,gt=0"`
	Name     *string `json:"name" validate:"required,min=1"`
	Type     *string `json:"type" validate:"required,min=1"`
	FilePath *string `json:"filePath" nullable:"true"`
}

// FinancialInput is the accepted shape of a financial record payload
type FinancialInput struct {
	CaseID      *uint            `json:"caseId" validate:"required,gt=0"`
	Type        *string          `json:"type" validate:"required,financialtype"`
	Description *string          `json:"description" validate:"required,min=1"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,nonnegative,money"`
	Status      *string          `json:"status" validate:"omitempty,financialstatus"`
	DueDate     *time.Time       `json:"dueDate" nullable:"true"`
	PaidDate    *time.Time       `json:"paidDate" nullable:"true"`
}

// CommunicationInput is the accepted shape of a communication payload
type CommunicationInput struct {
	CaseID   *uint      `json:"caseId" validate:"required,gt=0"`
	ClientID *uint      `json:"clientId" validate:"required,gt=0"`
	Type     *string    `json:"type" validate:"required,communicationtype"`
	Subject  *string    `json:"subject" nullable:"true"`
	Content  *string    `json:"content" nullable:"true" sanitize:"true"`
	Date     *time.Time `json:"date"`
}

// Entity schemas
var (
	Clients        = New[ClientInput]("client")
	Cases          = New[CaseInput]("case")
	Activities     = New[ActivityInput]("activity")
	Hearings       = New[HearingInput]("hearing")
	Documents      = New[DocumentInput]("document")
	Financial      = New[FinancialInput]("financial record")
	Communications = New[CommunicationInput]("communication")
)

// Model builds the client row to insert
func (in *ClientInput) Model() *models.Client {
	return &models.Client{
		Name:     deref(in.Name),
		Email:    in.Email,
		Phone:    in.Phone,
		Document: in.Document,
		Address:  in.Address,
		Notes:    in.Notes,
	}
}

// Model builds the case row to insert
func (in *CaseInput) Model() *models.Case {
	c := &models.Case{
		ProcessNumber: deref(in.ProcessNumber),
		Court:         deref(in.Court),
		ClientID:      deref(in.ClientID),
		ActionType:    deref(in.ActionType),
		Plaintiff:     deref(in.Plaintiff),
		Defendant:     deref(in.Defendant),
		Status:        orDefault(in.Status, models.CaseStatusOngoing),
		Description:   in.Description,
		Notes:         in.Notes,
	}
	if in.CaseValue != nil {
		c.CaseValue = decimal.NewNullDecimal(*in.CaseValue)
	}
	return c
}

// Model builds the activity row to insert
func (in *ActivityInput) Model() *models.Activity {
	return &models.Activity{
		CaseID:      deref(in.CaseID),
		Type:        deref(in.Type),
		Title:       deref(in.Title),
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   deref(in.Completed),
		Priority:    orDefault(in.Priority, models.PriorityMedium),
	}
}

// Model builds the hearing row to insert
func (in *HearingInput) Model() *models.Hearing {
	return &models.Hearing{
		CaseID:    deref(in.CaseID),
		Title:     deref(in.Title),
		Date:      deref(in.Date),
		Location:  in.Location,
		Type:      deref(in.Type),
		Notes:     in.Notes,
		Completed: deref(in.Completed),
	}
}

// Model builds the document row to insert
func (in *DocumentInput) Model() *models.Document {
	return &models.Document{
		CaseID:   deref(in.CaseID),
		Name:     deref(in.Name),
		Type:     deref(in.Type),
		FilePath: in.FilePath,
	}
}

// Model builds the financial row to insert
func (in *FinancialInput) Model() *models.FinancialRecord {
	return &models.FinancialRecord{
		CaseID:      deref(in.CaseID),
		Type:        deref(in.Type),
		Description: deref(in.Description),
		Amount:      deref(in.Amount),
		Status:      orDefault(in.Status, models.FinancialStatusPending),
		DueDate:     in.DueDate,
		PaidDate:    in.PaidDate,
	}
}

// Model builds the communication row to insert
func (in *CommunicationInput) Model() *models.Communication {
	return &models.Communication{
		CaseID:   deref(in.CaseID),
		ClientID: deref(in.ClientID),
		Type:     deref(in.Type),
		Subject:  in.Subject,
		Content:  in.Content,
		Date:     deref(in.Date),
	}
}

func deref[V any](p *V) V {
	var zero V
	if p == nil {
		return zero
	}
	return *p
}

func orDefault(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
