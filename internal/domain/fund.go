package domain

import "time"

// Fund is a monetary allocation from a Project to a Caregiver. Immutable
// after creation. The caregiver is existence-checked but not required to
// belong to the referenced project.
type Fund struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	CaregiverID string    `json:"caregiverId"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Purpose     *string   `json:"purpose"`
	AllocatedAt time.Time `json:"allocatedAt"`
}
