package fund

import (
	"context"
	"time"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// AllocateFundInput carries the caller-supplied allocation fields.
type AllocateFundInput struct {
	ProjectID   string
	CaregiverID string
	Amount      float64
	Currency    string
	Purpose     string
}

// AllocateFund records a monetary allocation from a project to a caregiver.
// Allocation requires the project to be active; the caregiver is
// existence-checked only and need not belong to the project.
type AllocateFund struct {
	projects        ports.ProjectRepository
	caregivers      ports.CaregiverRepository
	funds           ports.FundRepository
	ident           ports.IDGenerator
	defaultCurrency string
}

// NewAllocateFund builds the use case. defaultCurrency is applied when the
// caller omits one.
func NewAllocateFund(projects ports.ProjectRepository, caregivers ports.CaregiverRepository, funds ports.FundRepository, ident ports.IDGenerator, defaultCurrency string) *AllocateFund {
	return &AllocateFund{projects: projects, caregivers: caregivers, funds: funds, ident: ident, defaultCurrency: defaultCurrency}
}

func (uc *AllocateFund) Execute(ctx context.Context, input AllocateFundInput) (*domain.Fund, error) {
	proj, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	cg, err := uc.caregivers.GetByID(ctx, input.CaregiverID)
	if err != nil {
		return nil, err
	}
	if proj == nil || cg == nil {
		return nil, domerrors.ErrProjectOrCaregiverNotFound
	}
	if !proj.Active {
		return nil, domerrors.ErrProjectInactive
	}
	if input.Amount <= 0 {
		return nil, domerrors.ErrAmountNotPositive
	}
	currency := input.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	f := &domain.Fund{
		ID:          uc.ident.NewID(),
		ProjectID:   input.ProjectID,
		CaregiverID: input.CaregiverID,
		Amount:      input.Amount,
		Currency:    currency,
		Purpose:     domain.Optional(input.Purpose),
		AllocatedAt: time.Now().UTC(),
	}
	if err := uc.funds.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
