package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"delicious/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// newTestDB opens an in-memory sqlite database with the schema applied.
// Queries that rely on PostGIS or tsvector run in the *_Postgres tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

// withReplica registers a file-backed sqlite replica on db and returns a
// direct handle to it for seeding rows the primary does not have.
func withReplica(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "replica.db")
	replica, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := replica.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), replica))
	require.NoError(t, db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{sqlite.Open(dsn)},
	})))

	return replica
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Wes",
		PasswordHash: "hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedStore(t *testing.T, db *gorm.DB, name, slug string, tags ...string) *entity.Store {
	t.Helper()

	store := &entity.Store{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: name + " description",
		Tags:        tags,
		Location:    entity.NewLocation(-79.3832, 43.6532, "Toronto"),
		AuthorID:    uuid.New(),
	}
	require.NoError(t, NewStoreRepository(db).Create(context.Background(), store))

	return store
}

func seedReviews(t *testing.T, db *gorm.DB, storeID uuid.UUID, ratings ...int) {
	t.Helper()

	repo := NewReviewRepository(db)
	for i, rating := range ratings {
		require.NoError(t, repo.Create(context.Background(), &entity.Review{
			ID:        uuid.New(),
			AuthorID:  uuid.New(),
			StoreID:   storeID,
			Rating:    rating,
			Text:      "ok",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}))
	}
}
