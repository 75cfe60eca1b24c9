package models

// BusinessProfile is the stored/exported form of the installation profile.
type BusinessProfile struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Owner    string `json:"owner"`
}
