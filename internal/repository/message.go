package repository

import (
	"context"
	"errors"

	"warbler/internal/cache"
	"warbler/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error)
	Timeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
	Delete(ctx context.Context, id uint) error
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		if isIntegrityConstraintError(err) {
			return models.NewValidationError("Message requires an existing author and text")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	var message models.Message
	key := cache.MessageKey(id)

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &message, cache.MessageTTL, func() error {
			return r.applyMessageDetails(r.db.WithContext(ctx), 0).
				Preload("User").
				First(&message, id).Error
		})
	} else {
		err = r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			First(&message, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// Timeline returns the home feed: messages by the user and everyone they follow,
// newest first.
func (r *messageRepository) Timeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	followed := r.db.Model(&models.Follow{}).
		Select("user_being_followed_id").
		Where("user_following_id = ?", userID)

	err := r.applyMessageDetails(r.db.WithContext(ctx), userID).
		Preload("User").
		Where("user_id = ? OR user_id IN (?)", userID, followed).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// applyMessageDetails adds subqueries to fetch like counts and liked status in a single query.
func (r *messageRepository) applyMessageDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "messages.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.message_id = messages.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.message_id = messages.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, id)
	return nil
}
