package domain

import "time"

// ActivityStatusSubmitted is the initial status assigned when the caller
// does not supply one. Status is free-form text; there is no transition
// validation.
const ActivityStatusSubmitted = "Submitted"

// Activity is a reported use of allocated funds. Unlike Fund allocation,
// reporting does not require the referenced Project to be active.
type Activity struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	CaregiverID  string    `json:"caregiverId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	EvidenceURLs []string  `json:"evidenceUrls"`
	AmountSpent  float64   `json:"amountSpent"`
	Status       string    `json:"status"`
	ReportedAt   time.Time `json:"reportedAt"`
}
