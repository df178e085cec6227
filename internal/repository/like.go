package repository

import (
	"context"

	"warbler/internal/cache"
	"warbler/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Like(ctx context.Context, userID, messageID uint) error
	Unlike(ctx context.Context, userID, messageID uint) error
	IsLiked(ctx context.Context, userID, messageID uint) (bool, error)
	GetLikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
	CountForMessage(ctx context.Context, messageID uint) (int64, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, messageID uint) error {
	like := models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Message already liked", err)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID, messageID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) GetLikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	if err := r.db.WithContext(ctx).
		Table("messages").
		Select("messages.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.message_id = messages.id) as likes_count, "+
			"true as liked").
		Joins("JOIN likes l ON messages.id = l.message_id").
		Where("l.user_id = ?", userID).
		Order("l.created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *likeRepository) CountForMessage(ctx context.Context, messageID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("message_id = ?", messageID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
