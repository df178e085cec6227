package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	likeRepo    repository.LikeRepository
}

func NewMessageService(messageRepo repository.MessageRepository, likeRepo repository.LikeRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, likeRepo: likeRepo}
}

func (s *MessageService) Create(ctx context.Context, userID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateMessageText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{Text: text, UserID: userID}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, message.ID, userID)
}

func (s *MessageService) GetByID(ctx context.Context, id, currentUserID uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id, currentUserID)
}

func (s *MessageService) ListByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	return s.messageRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *MessageService) Timeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.messageRepo.Timeline(ctx, userID, limit, offset)
}

// Delete removes a message. Only the author may delete their own messages.
func (s *MessageService) Delete(ctx context.Context, messageID, userID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID != userID {
		return models.NewForbiddenError("You can only delete your own messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// Like marks a message as liked. Liking your own message is rejected.
func (s *MessageService) Like(ctx context.Context, userID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID == userID {
		return models.NewValidationError("You cannot like your own message")
	}
	return s.likeRepo.Like(ctx, userID, messageID)
}

func (s *MessageService) Unlike(ctx context.Context, userID, messageID uint) error {
	if _, err := s.messageRepo.GetByID(ctx, messageID, 0); err != nil {
		return err
	}
	return s.likeRepo.Unlike(ctx, userID, messageID)
}

func (s *MessageService) LikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.likeRepo.GetLikedMessages(ctx, userID, limit, offset)
}
