package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := seedUser(t, db, "  Wes@Example.com ")
	assert.Equal(t, "wes@example.com", created.Email)

	found, err := repo.FindByEmail(ctx, "WES@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Nil(t, found.ResetToken)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "wes@example.com")

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		ID:           uuid.New(),
		Email:        "WES@example.com",
		Name:         "Impostor",
		PasswordHash: "hash",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "wes@example.com")
	other := seedUser(t, db, "other@example.com")

	user.Name = "Wes Bos"
	user.Email = "NEW@example.com"
	require.NoError(t, repo.UpdateProfile(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wes Bos", found.Name)
	assert.Equal(t, "new@example.com", found.Email)

	other.Email = "new@example.com"
	assert.ErrorIs(t, repo.UpdateProfile(ctx, other), domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_ResetTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	user := seedUser(t, db, "wes@example.com")
	require.NoError(t, repo.SetResetToken(ctx, user.ID, "tok", now.Add(time.Hour)))

	holder, err := repo.FindByValidResetToken(ctx, "tok", now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, holder.ID)
	assert.True(t, holder.HasPendingReset(now))

	_, err = repo.FindByValidResetToken(ctx, "tok", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, repository.ErrUserNotFound, "expired token must not match")

	_, err = repo.FindByValidResetToken(ctx, "other", now)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	updated, err := repo.ConsumeResetToken(ctx, user.ID, "tok", "new-hash", now)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
	assert.Nil(t, updated.ResetToken)
	assert.Nil(t, updated.ResetTokenExpiresAt)

	_, err = repo.ConsumeResetToken(ctx, user.ID, "tok", "again", now)
	assert.ErrorIs(t, err, repository.ErrResetTokenRejected, "a token is consumed at most once")

	_, err = repo.FindByValidResetToken(ctx, "tok", now)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ConsumeResetToken_Expired(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	user := seedUser(t, db, "wes@example.com")
	require.NoError(t, repo.SetResetToken(ctx, user.ID, "tok", now.Add(-time.Second)))

	_, err := repo.ConsumeResetToken(ctx, user.ID, "tok", "new-hash", now)
	assert.ErrorIs(t, err, repository.ErrResetTokenRejected)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserRepository_ConsumeResetToken_Concurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	user := seedUser(t, db, "wes@example.com")
	require.NoError(t, repo.SetResetToken(ctx, user.ID, "tok", now.Add(time.Hour)))

	const consumers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)
	for range consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ConsumeResetToken(ctx, user.ID, "tok", "new-hash", now)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, repository.ErrResetTokenRejected):
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, consumers-1, rejected)
}

func TestUserRepository_ToggleFavorite(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "wes@example.com")
	storeID := uuid.New()

	hearted, err := repo.ToggleFavorite(ctx, user.ID, storeID)
	require.NoError(t, err)
	assert.True(t, hearted)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{storeID}, found.FavoriteStoreIDs)

	hearted, err = repo.ToggleFavorite(ctx, user.ID, storeID)
	require.NoError(t, err)
	assert.False(t, hearted)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.FavoriteStoreIDs)
}
