package dashboard

import (
	"context"
	"testing"

	"github.com/mubarek-tria/CIEt/internal/domain"
	"github.com/mubarek-tria/CIEt/internal/infrastructure/persistence/memory"
)

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	projects := memory.NewProjectStore()
	caregivers := memory.NewCaregiverStore()
	uc := NewSummarize(projects, caregivers)

	s, err := uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalProjects != 0 || s.ActiveProjects != 0 || s.TotalCaregivers != 0 {
		t.Fatalf("empty store summary = %+v", s)
	}

	_ = projects.Create(ctx, &domain.Project{ID: "p1", Code: "A", Active: true})
	_ = projects.Create(ctx, &domain.Project{ID: "p2", Code: "B", Active: false})
	_ = caregivers.Create(ctx, &domain.Caregiver{ID: "c1", ProjectID: "p1", FullName: "Jane"})

	s, err = uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalProjects != 2 {
		t.Errorf("totalProjects = %d, want 2", s.TotalProjects)
	}
	if s.ActiveProjects != 1 {
		t.Errorf("activeProjects = %d, want 1", s.ActiveProjects)
	}
	if s.TotalCaregivers != 1 {
		t.Errorf("totalCaregivers = %d, want 1", s.TotalCaregivers)
	}
	if s.TotalEmployees != 0 {
		t.Errorf("totalEmployees is a placeholder and must be 0, got %d", s.TotalEmployees)
	}
}
