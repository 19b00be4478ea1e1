package fund

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ListFundsInput narrows the listing by either or both keys.
type ListFundsInput struct {
	ProjectID   string
	CaregiverID string
}

// ListFunds returns fund allocations matching the filter.
type ListFunds struct {
	funds ports.FundRepository
}

// NewListFunds builds the use case.
func NewListFunds(funds ports.FundRepository) *ListFunds {
	return &ListFunds{funds: funds}
}

func (uc *ListFunds) Execute(ctx context.Context, input ListFundsInput) ([]domain.Fund, error) {
	return uc.funds.List(ctx, ports.FundFilter{ProjectID: input.ProjectID, CaregiverID: input.CaregiverID})
}
