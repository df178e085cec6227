package repository

import (
	"context"
	"testing"

	"warbler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema and
// foreign key enforcement enabled, so constraint violations surface exactly
// as they would against Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "$2a$10$notarealhashbutlongenoughtolooklikeone",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestMessage(t *testing.T, db *gorm.DB, user *models.User, text string) *models.Message {
	t.Helper()
	message := &models.Message{Text: text, UserID: user.ID}
	require.NoError(t, db.Create(message).Error)
	return message
}

func TestUserRepository_Create_DuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")

	sameName := &models.User{Username: "alice", Email: "other@example.com", Password: "x"}
	err := repo.Create(ctx, sameName)
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))

	sameEmail := &models.User{Username: "bob", Email: "alice@example.com", Password: "x"}
	err = repo.Create(ctx, sameEmail)
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
}

func TestMessageRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	message := &models.Message{Text: "first warble", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, message))
	require.NotZero(t, message.ID)

	got, err := repo.GetByID(ctx, message.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "first warble", got.Text)
	assert.Equal(t, alice.ID, got.UserID)
	assert.Equal(t, "alice", got.User.Username)
	assert.Equal(t, 0, got.LikesCount)
	assert.False(t, got.Liked)
}

func TestMessageRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	_, err := repo.GetByID(context.Background(), 999, 0)
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestMessageRepository_Create_MissingOwnerFails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	// No user with ID 42 exists; the FK rejects the insert at commit.
	err := repo.Create(context.Background(), &models.Message{Text: "orphan", UserID: 42})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestMessageRepository_Timeline(t *testing.T) {
	db := setupTestDB(t)
	messageRepo := NewMessageRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	createTestMessage(t, db, alice, "from alice")
	createTestMessage(t, db, bob, "from bob")
	createTestMessage(t, db, carol, "from carol")

	require.NoError(t, followRepo.Follow(ctx, alice.ID, bob.ID))

	// Alice sees her own messages and bob's, but not carol's.
	timeline, err := messageRepo.Timeline(ctx, alice.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	texts := []string{timeline[0].Text, timeline[1].Text}
	assert.Contains(t, texts, "from alice")
	assert.Contains(t, texts, "from bob")
	assert.NotContains(t, texts, "from carol")
}

func TestMessageRepository_Delete_RemovesLikes(t *testing.T) {
	db := setupTestDB(t)
	messageRepo := NewMessageRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	message := createTestMessage(t, db, alice, "soon to be gone")

	require.NoError(t, likeRepo.Like(ctx, bob.ID, message.ID))

	require.NoError(t, messageRepo.Delete(ctx, message.ID))

	_, err := messageRepo.GetByID(ctx, message.ID, 0)
	assert.True(t, models.IsNotFound(err))

	count, err := likeRepo.CountForMessage(ctx, message.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFollowRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	t.Run("follow and check", func(t *testing.T) {
		require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		// Directional: bob does not follow alice back.
		reverse, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, reverse)
	})

	t.Run("duplicate follow conflicts", func(t *testing.T) {
		err := repo.Follow(ctx, alice.ID, bob.ID)
		assert.Error(t, err)
		assert.True(t, models.IsConflict(err))
	})

	t.Run("listing and counts", func(t *testing.T) {
		followingList, err := repo.GetFollowing(ctx, alice.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, followingList, 1)
		assert.Equal(t, "bob", followingList[0].Username)

		followerList, err := repo.GetFollowers(ctx, bob.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, followerList, 1)
		assert.Equal(t, "alice", followerList[0].Username)

		followingCount, err := repo.CountFollowing(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followingCount)

		followersCount, err := repo.CountFollowers(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), followersCount)
	})

	t.Run("unfollow", func(t *testing.T) {
		require.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)

		// Unfollowing an absent edge is a no-op.
		assert.NoError(t, repo.Unfollow(ctx, alice.ID, bob.ID))
	})
}

func TestLikeRepository(t *testing.T) {
	db := setupTestDB(t)
	likeRepo := NewLikeRepository(db)
	messageRepo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	message := createTestMessage(t, db, alice, "like me")

	t.Run("like and check", func(t *testing.T) {
		require.NoError(t, likeRepo.Like(ctx, bob.ID, message.ID))

		liked, err := likeRepo.IsLiked(ctx, bob.ID, message.ID)
		require.NoError(t, err)
		assert.True(t, liked)

		count, err := likeRepo.CountForMessage(ctx, message.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("duplicate like conflicts", func(t *testing.T) {
		err := likeRepo.Like(ctx, bob.ID, message.ID)
		assert.Error(t, err)
		assert.True(t, models.IsConflict(err))
	})

	t.Run("liked status in message details", func(t *testing.T) {
		got, err := messageRepo.GetByID(ctx, message.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, got.Liked)
		assert.Equal(t, 1, got.LikesCount)

		asAlice, err := messageRepo.GetByID(ctx, message.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, asAlice.Liked)
	})

	t.Run("liked messages listing", func(t *testing.T) {
		liked, err := likeRepo.GetLikedMessages(ctx, bob.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, liked, 1)
		assert.Equal(t, "like me", liked[0].Text)
		assert.Equal(t, "alice", liked[0].User.Username)
	})

	t.Run("unlike", func(t *testing.T) {
		require.NoError(t, likeRepo.Unlike(ctx, bob.ID, message.ID))

		liked, err := likeRepo.IsLiked(ctx, bob.ID, message.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	messageRepo := NewMessageRepository(db)
	followRepo := NewFollowRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	aliceMsg := createTestMessage(t, db, alice, "alice warbles")
	bobMsg := createTestMessage(t, db, bob, "bob warbles")

	require.NoError(t, followRepo.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, followRepo.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, likeRepo.Like(ctx, alice.ID, bobMsg.ID))
	require.NoError(t, likeRepo.Like(ctx, bob.ID, aliceMsg.ID))

	require.NoError(t, userRepo.DeleteCascade(ctx, alice.ID))

	// Alice, her messages, her likes and likes on her messages are all gone.
	_, err := userRepo.GetByID(ctx, alice.ID)
	assert.True(t, models.IsNotFound(err))

	_, err = messageRepo.GetByID(ctx, aliceMsg.ID, 0)
	assert.True(t, models.IsNotFound(err))

	var likeCount int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.Zero(t, likeCount)

	var followCount int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&followCount).Error)
	assert.Zero(t, followCount)

	// Bob and his message survive untouched.
	survivor, err := userRepo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", survivor.Username)

	got, err := messageRepo.GetByID(ctx, bobMsg.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "bob warbles", got.Text)
}

func TestUserRepository_List_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")
	createTestUser(t, db, "alicia")
	createTestUser(t, db, "bob")

	all, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := repo.List(ctx, "alic", 10, 0)
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	none, err := repo.List(ctx, "zzz", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserRepository_NewUserHasEmptyCollections(t *testing.T) {
	db := setupTestDB(t)
	messageRepo := NewMessageRepository(db)
	followRepo := NewFollowRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	fresh := createTestUser(t, db, "fresh")

	messages, err := messageRepo.GetByUserID(ctx, fresh.ID, 10, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)

	following, err := followRepo.GetFollowing(ctx, fresh.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, following)

	followers, err := followRepo.GetFollowers(ctx, fresh.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, followers)

	liked, err := likeRepo.GetLikedMessages(ctx, fresh.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, liked)
}
