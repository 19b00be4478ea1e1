package domain

// Caregiver is a beneficiary/guardian enrolled under exactly one Project.
// UniqueID is the human-facing code (CG-XXXXXX). It is generated from
// randomness without a collision check against existing records, so it is
// best-effort unique, unlike ID.
type Caregiver struct {
	ID                 string  `json:"id"`
	UniqueID           string  `json:"uniqueId"`
	ProjectID          string  `json:"projectId"`
	FullName           string  `json:"fullName"`
	Gender             *string `json:"gender"`
	DOB                *string `json:"dob"`
	ChildName          *string `json:"childName"`
	ChildProjectNumber *string `json:"childProjectNumber"`
	Address            Address `json:"address"`
	Contact            Contact `json:"contact"`
	PhotoURL           *string `json:"photoUrl"`
}
