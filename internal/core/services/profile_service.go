package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/platform/config"
	"github.com/typoapparel/tbm_backend/internal/platform/metrics"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
	cfg         *config.Config
}

// NewProfileService creates the profile/theme service. Configured defaults
// are served until the first save.
func NewProfileService(profileRepo portsrepo.ProfileRepository, cfg *config.Config) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo, cfg: cfg}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

// GetProfile returns the stored profile, falling back to the configured
// default before the first save. The default is not persisted.
func (s *profileService) GetProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.BusinessProfile{
				Name:     s.cfg.BusinessName,
				Subtitle: s.cfg.BusinessSubtitle,
				Owner:    s.cfg.BusinessOwner,
			}, nil
		}
		return nil, fmt.Errorf("failed to load profile in service: %w", err)
	}
	return profile, nil
}

// UpdateProfile replaces the singleton profile.
func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*domain.BusinessProfile, error) {
	if req.Name == "" {
		metrics.MutationFailuresTotal.WithLabelValues("profile", "update").Inc()
		return nil, fmt.Errorf("business name is required: %w", apperrors.ErrValidation)
	}

	profile := domain.BusinessProfile{
		Name:     req.Name,
		Subtitle: req.Subtitle,
		Owner:    req.Owner,
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("profile", "update").Inc()
		return nil, fmt.Errorf("failed to flush profile in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("profile", "update").Inc()
	return &profile, nil
}

// GetTheme returns the stored theme, or the configured default before the
// first save.
func (s *profileService) GetTheme(ctx context.Context) (string, error) {
	theme, err := s.profileRepo.GetTheme(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.cfg.DefaultTheme, nil
		}
		return "", fmt.Errorf("failed to load theme in service: %w", err)
	}
	return theme, nil
}

// SetTheme stores the theme name.
func (s *profileService) SetTheme(ctx context.Context, theme string) error {
	if theme == "" {
		metrics.MutationFailuresTotal.WithLabelValues("theme", "update").Inc()
		return fmt.Errorf("theme is required: %w", apperrors.ErrValidation)
	}
	if err := s.profileRepo.SaveTheme(ctx, theme); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("theme", "update").Inc()
		return fmt.Errorf("failed to flush theme in service: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("theme", "update").Inc()
	return nil
}
