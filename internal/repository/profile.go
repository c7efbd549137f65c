package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository defines persistence operations for profiles and their
// experience and education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, userID uint, exp *models.Experience) error
	DeleteExperience(ctx context.Context, userID, profileID, expID uint) error
	AddEducation(ctx context.Context, userID uint, edu *models.Education) error
	DeleteEducation(ctx context.Context, userID, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID loads a profile with its owner and ordered experience and
// education entries, newest first. Reads go through the cache; every write
// path invalidates the entry.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		err := r.db.WithContext(ctx).
			Preload("User").
			Preload("Experience", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at DESC, id DESC")
			}).
			Preload("Education", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at DESC, id DESC")
			}).
			Where("user_id = ?", userID).
			First(&profile).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Profile")
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// Save upserts the profile row itself without touching child associations.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, userID uint, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, userID, profileID, expID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Experience entry")
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, userID uint, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, userID, profileID, eduID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Education entry")
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}
