package activity

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
)

// ListActivitiesInput narrows the listing by either or both keys.
type ListActivitiesInput struct {
	ProjectID   string
	CaregiverID string
}

// ListActivities returns reported activities matching the filter.
type ListActivities struct {
	activities ports.ActivityRepository
}

// NewListActivities builds the use case.
func NewListActivities(activities ports.ActivityRepository) *ListActivities {
	return &ListActivities{activities: activities}
}

func (uc *ListActivities) Execute(ctx context.Context, input ListActivitiesInput) ([]domain.Activity, error) {
	return uc.activities.List(ctx, ports.ActivityFilter{ProjectID: input.ProjectID, CaregiverID: input.CaregiverID})
}
