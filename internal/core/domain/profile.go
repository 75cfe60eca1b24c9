package domain

// BusinessProfile is the singleton installation configuration shown in the
// client's header.
type BusinessProfile struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Owner    string `json:"owner"`
}
