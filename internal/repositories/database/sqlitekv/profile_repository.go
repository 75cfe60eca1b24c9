package sqlitekv

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	"github.com/typoapparel/tbm_backend/internal/models"
	"github.com/typoapparel/tbm_backend/internal/utils/mapping"
)

type KVProfileRepository struct {
	BaseRepository
}

// newKVProfileRepository creates the profile/theme repository.
func newKVProfileRepository(store *Store) portsrepo.ProfileRepository {
	return &KVProfileRepository{BaseRepository: BaseRepository{Store: store}}
}

// Ensure implementation matches interface
var _ portsrepo.ProfileRepository = (*KVProfileRepository)(nil)

// GetProfile returns the stored profile, or apperrors.ErrNotFound before the
// first save.
func (r *KVProfileRepository) GetProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	var stored models.BusinessProfile
	if err := r.getJSON(ctx, keyProfile, &stored); err != nil {
		return nil, err
	}
	profile := mapping.ToDomainProfile(stored)
	return &profile, nil
}

// SaveProfile flushes the singleton profile.
func (r *KVProfileRepository) SaveProfile(ctx context.Context, profile domain.BusinessProfile) error {
	return r.putJSON(ctx, keyProfile, mapping.ToModelProfile(profile))
}

// GetTheme returns the stored theme name, or apperrors.ErrNotFound before
// the first save.
func (r *KVProfileRepository) GetTheme(ctx context.Context) (string, error) {
	raw, err := r.Store.Get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SaveTheme flushes the theme name. Stored as a bare string, matching what
// the client kept in local storage.
func (r *KVProfileRepository) SaveTheme(ctx context.Context, theme string) error {
	return r.Store.Set(ctx, keyTheme, []byte(theme))
}
