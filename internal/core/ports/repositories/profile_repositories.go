package repositories

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// ProfileRepository persists the singleton business profile and the UI
// theme. Both return apperrors.ErrNotFound before first write.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (*domain.BusinessProfile, error)
	SaveProfile(ctx context.Context, profile domain.BusinessProfile) error
	GetTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}
