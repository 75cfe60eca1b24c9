package dto

import "github.com/typoapparel/tbm_backend/internal/core/domain"

// UpdateProfileRequest replaces the business profile.
type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Subtitle string `json:"subtitle"`
	Owner    string `json:"owner"`
}

// ProfileResponse defines the data returned for the business profile.
type ProfileResponse struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Owner    string `json:"owner"`
}

// ThemeRequest sets the stored UI theme.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// ThemeResponse returns the stored UI theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ToProfileResponse converts a domain BusinessProfile to its response DTO
func ToProfileResponse(p *domain.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		Name:     p.Name,
		Subtitle: p.Subtitle,
		Owner:    p.Owner,
	}
}
