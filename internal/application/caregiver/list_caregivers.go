package caregiver

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ListCaregiversInput optionally narrows the listing to one project.
type ListCaregiversInput struct {
	ProjectID string
}

// ListCaregivers returns caregivers, optionally filtered by project.
type ListCaregivers struct {
	caregivers ports.CaregiverRepository
}

// NewListCaregivers builds the use case.
func NewListCaregivers(caregivers ports.CaregiverRepository) *ListCaregivers {
	return &ListCaregivers{caregivers: caregivers}
}

func (uc *ListCaregivers) Execute(ctx context.Context, input ListCaregiversInput) ([]domain.Caregiver, error) {
	return uc.caregivers.List(ctx, input.ProjectID)
}
