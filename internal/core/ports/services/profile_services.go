package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/dto"
)

// ProfileSvcFacade exposes the singleton business profile and UI theme.
type ProfileSvcFacade interface {
	// GetProfile returns the stored profile, or the configured default
	// before the first save.
	GetProfile(ctx context.Context) (*domain.BusinessProfile, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*domain.BusinessProfile, error)
	GetTheme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}
