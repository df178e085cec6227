package service

import (
	"context"

	"warbler/internal/models"
)

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithMessagesFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteCascadeFn       func(context.Context, uint) error
	listFn                func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithMessages(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithMessagesFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, search, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:             func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithMessagesFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:       func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:              func(context.Context, *models.User) error { return nil },
		updateFn:              func(context.Context, *models.User) error { return nil },
		deleteCascadeFn:       func(context.Context, uint) error { return nil },
		listFn:                func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn      func(context.Context, *models.Message) error
	getByIDFn     func(context.Context, uint, uint) (*models.Message, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Message, error)
	timelineFn    func(context.Context, uint, int, int) ([]*models.Message, error)
	deleteFn      func(context.Context, uint) error
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *messageRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *messageRepoStub) Timeline(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.timelineFn(ctx, userID, limit, offset)
}
func (s *messageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:  func(context.Context, *models.Message) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Message, error) { return &models.Message{ID: id}, nil },
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Message, error) {
			return nil, nil
		},
		timelineFn: func(context.Context, uint, int, int) ([]*models.Message, error) { return nil, nil },
		deleteFn:   func(context.Context, uint) error { return nil },
	}
}

type likeRepoStub struct {
	likeFn             func(context.Context, uint, uint) error
	unlikeFn           func(context.Context, uint, uint) error
	isLikedFn          func(context.Context, uint, uint) (bool, error)
	getLikedMessagesFn func(context.Context, uint, int, int) ([]*models.Message, error)
	countForMessageFn  func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, messageID uint) error {
	return s.likeFn(ctx, userID, messageID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, messageID uint) error {
	return s.unlikeFn(ctx, userID, messageID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, messageID)
}
func (s *likeRepoStub) GetLikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.getLikedMessagesFn(ctx, userID, limit, offset)
}
func (s *likeRepoStub) CountForMessage(ctx context.Context, messageID uint) (int64, error) {
	return s.countForMessageFn(ctx, messageID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:    func(context.Context, uint, uint) error { return nil },
		unlikeFn:  func(context.Context, uint, uint) error { return nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		getLikedMessagesFn: func(context.Context, uint, int, int) ([]*models.Message, error) {
			return nil, nil
		},
		countForMessageFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
