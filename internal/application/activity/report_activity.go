package activity

import (
	"context"
	"time"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
	"github.com/mubarek-tria/CIEt/internal/domain"
	domerrors "github.com/mubarek-tria/CIEt/internal/domain/errors"
)

// ReportActivityInput carries the caller-supplied report fields.
type ReportActivityInput struct {
	ProjectID    string
	CaregiverID  string
	Title        string
	Description  string
	EvidenceURLs []string
	AmountSpent  float64
	Status       string
}

// ReportActivity records a reported use of allocated funds. Unlike fund
// allocation, reporting is accepted against an inactive project; reports may
// document spending that happened before deactivation.
type ReportActivity struct {
	projects   ports.ProjectRepository
	caregivers ports.CaregiverRepository
	activities ports.ActivityRepository
	ident      ports.IDGenerator
}

// NewReportActivity builds the use case.
func NewReportActivity(projects ports.ProjectRepository, caregivers ports.CaregiverRepository, activities ports.ActivityRepository, ident ports.IDGenerator) *ReportActivity {
	return &ReportActivity{projects: projects, caregivers: caregivers, activities: activities, ident: ident}
}

func (uc *ReportActivity) Execute(ctx context.Context, input ReportActivityInput) (*domain.Activity, error) {
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
	if input.Title == "" {
		return nil, domerrors.ErrTitleRequired
	}
	urls := input.EvidenceURLs
	if urls == nil {
		urls = []string{}
	}
	status := input.Status
	if status == "" {
		status = domain.ActivityStatusSubmitted
	}
	a := &domain.Activity{
		ID:           uc.ident.NewID(),
		ProjectID:    input.ProjectID,
		CaregiverID:  input.CaregiverID,
		Title:        input.Title,
		Description:  domain.Optional(input.Description),
		EvidenceURLs: urls,
		AmountSpent:  input.AmountSpent,
		Status:       status,
		ReportedAt:   time.Now().UTC(),
	}
	if err := uc.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
