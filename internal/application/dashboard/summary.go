package dashboard

import (
	"context"

	"github.com/mubarek-tria/CIEt/internal/application/ports"
)

// Summary is the admin dashboard rollup. TotalEmployees is a placeholder:
// no Employee entity exists in this core, so the count is always zero. It is
// kept in the payload because the dashboard front-end renders the field.
type Summary struct {
	TotalProjects   int `json:"totalProjects"`
	ActiveProjects  int `json:"activeProjects"`
	TotalCaregivers int `json:"totalCaregivers"`
	TotalEmployees  int `json:"totalEmployees"`
}

// Summarize computes the rollup by full scans at call time.
type Summarize struct {
	projects   ports.ProjectRepository
	caregivers ports.CaregiverRepository
}

// NewSummarize builds the use case.
func NewSummarize(projects ports.ProjectRepository, caregivers ports.CaregiverRepository) *Summarize {
	return &Summarize{projects: projects, caregivers: caregivers}
}

func (uc *Summarize) Execute(ctx context.Context) (*Summary, error) {
	all, err := uc.projects.List(ctx, ports.ProjectFilter{})
	if err != nil {
		return nil, err
	}
	active := 0
	for _, p := range all {
		if p.Active {
			active++
		}
	}
	caregivers, err := uc.caregivers.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalProjects:   len(all),
		ActiveProjects:  active,
		TotalCaregivers: caregivers,
		TotalEmployees:  0,
	}, nil
}
