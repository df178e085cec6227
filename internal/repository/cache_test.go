package repository

import (
	"context"
	"testing"

	"warbler/internal/cache"
	"warbler/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	t.Cleanup(func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestUserRepository_Update_KeepsPasswordAfterCachedRead(t *testing.T) {
	withCache(t)
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	digest := alice.Password

	// First read populates the cache; the JSON round trip drops the hash, so
	// the second read hands back a user with an empty Password.
	_, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, cached.Password)

	cached.Bio = "warbling away"
	require.NoError(t, repo.Update(ctx, cached))

	// The stored hash must survive the update untouched.
	fresh, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Equal(t, digest, fresh.Password)
	assert.Equal(t, "warbling away", fresh.Bio)
}

func TestUserRepository_DeleteCascade_EvictsCachedMessages(t *testing.T) {
	mr := withCache(t)
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	messageRepo := NewMessageRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	message := createTestMessage(t, db, alice, "soon gone")

	// An anonymous read caches the message.
	_, err := messageRepo.GetByID(ctx, message.ID, 0)
	require.NoError(t, err)
	require.True(t, mr.Exists(cache.MessageKey(message.ID)))

	require.NoError(t, userRepo.DeleteCascade(ctx, alice.ID))

	// Neither the user nor their messages stay servable from the cache.
	assert.False(t, mr.Exists(cache.UserKey(alice.ID)))
	assert.False(t, mr.Exists(cache.MessageKey(message.ID)))

	_, err = messageRepo.GetByID(ctx, message.ID, 0)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}
