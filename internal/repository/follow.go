package repository

import (
	"context"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge data operations
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followedID uint) error
	Unfollow(ctx context.Context, followerID, followedID uint) error
	IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error)
	GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followedID uint) error {
	follow := models.Follow{
		UserBeingFollowedID: followedID,
		UserFollowingID:     followerID,
	}
	if err := r.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this user", err)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_being_followed_id = ? AND user_following_id = ?", followedID, followerID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_being_followed_id = ? AND user_following_id = ?", followedID, followerID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.user_being_followed_id").
		Where("f.user_following_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.user_following_id").
		Where("f.user_being_followed_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_being_followed_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
