package domain

// Credentials is the site login pair generated once at project creation.
// The secret is never regenerated and is returned as-is on reads.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Project is a program site. Active gates enrollment and fund allocation.
type Project struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Code         string      `json:"code"`
	Program      *string     `json:"program"`
	Address      Address     `json:"address"`
	DirectorName *string     `json:"directorName"`
	Active       bool        `json:"active"`
	SiteURL      string      `json:"siteUrl"`
	Credentials  Credentials `json:"credentials"`
}
