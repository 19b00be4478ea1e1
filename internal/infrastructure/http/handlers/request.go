package handlers

// addressBody is the raw address shape shared by project and caregiver
// requests. subcity is a legacy alias for zone kept for older form clients.
type addressBody struct {
	City    string `json:"city" validate:"max=128"`
	Zone    string `json:"zone" validate:"max=128"`
	Subcity string `json:"subcity" validate:"max=128"`
	Woreda  string `json:"woreda" validate:"max=128"`
}

type contactBody struct {
	Phone string `json:"phone" validate:"max=64"`
	Email string `json:"email" validate:"max=254"`
}

// truthy coerces an arbitrary JSON value to a boolean the way the form
// clients expect: false, 0, "", and null are false, everything else true.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	case nil:
		return false
	default:
		return true
	}
}
