package service

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// AccountService implements whole-account operations that span several
// aggregates and need a single transaction.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService returns a new AccountService.
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Delete removes the user together with everything they authored: likes and
// comments they left anywhere, their posts (with the likes and comments on
// those posts), their profile, and the user row itself. All of it happens in
// one transaction so a failure leaves the account intact.
func (s *AccountService) Delete(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return err
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Hard delete: a soft-deleted row would keep holding the unique
		// email index and block the address from registering again.
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateUser(ctx, userID)
	cache.InvalidateProfile(ctx, userID)
	return nil
}
