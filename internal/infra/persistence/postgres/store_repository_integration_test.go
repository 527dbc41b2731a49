package postgres

import (
	"context"
	"os"
	"testing"

	"delicious/internal/domain/entity"
	"delicious/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newPostgresTestDB connects to the PostGIS database named by
// DELICIOUS_TEST_POSTGRES_DSN and applies the schema.
func newPostgresTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DELICIOUS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("Skipping PostGIS test: DELICIOUS_TEST_POSTGRES_DSN env var not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

// seedPostgresStore inserts a store and removes it when the test ends.
func seedPostgresStore(t *testing.T, db *gorm.DB, name, description string, lon, lat float64) *entity.Store {
	t.Helper()

	store := &entity.Store{
		ID:          uuid.New(),
		Name:        name,
		Slug:        "it-" + uuid.NewString(),
		Description: description,
		Location:    entity.NewLocation(lon, lat, "Toronto"),
		AuthorID:    uuid.New(),
	}
	require.NoError(t, NewStoreRepository(db).Create(context.Background(), store))

	t.Cleanup(func() {
		db.Where("store_id = ?", store.ID).Delete(&model.StoreTagModel{})
		db.Where("id = ?", store.ID).Delete(&model.StoreModel{})
	})

	return store
}

func onlyIDs(stores []*entity.Store, keep ...uuid.UUID) []uuid.UUID {
	wanted := make(map[uuid.UUID]struct{}, len(keep))
	for _, id := range keep {
		wanted[id] = struct{}{}
	}

	ids := []uuid.UUID{}
	for _, s := range stores {
		if _, ok := wanted[s.ID]; ok {
			ids = append(ids, s.ID)
		}
	}

	return ids
}

func TestStoreRepository_SearchText_Postgres(t *testing.T) {
	db := newPostgresTestDB(t)
	repo := NewStoreRepository(db)

	strong := seedPostgresStore(t, db, "Kouignamann House", "kouignamann kouignamann every morning", -79.38, 43.65)
	weak := seedPostgresStore(t, db, "Corner Cafe", "coffee, tea and the odd kouignamann", -79.38, 43.65)
	other := seedPostgresStore(t, db, "Taco Stand", "tacos", -79.38, 43.65)

	stores, err := repo.SearchText(context.Background(), "kouignamann", 50)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{strong.ID, weak.ID}, onlyIDs(stores, strong.ID, weak.ID, other.ID))
}

func TestStoreRepository_SearchNear_Postgres(t *testing.T) {
	db := newPostgresTestDB(t)
	repo := NewStoreRepository(db)
	center := orb.Point{-79.3832, 43.6532}

	mid := seedPostgresStore(t, db, "Mid", "", -79.3732, 43.6532)
	near := seedPostgresStore(t, db, "Near", "", -79.3822, 43.6532)
	far := seedPostgresStore(t, db, "Far", "", -78.3832, 43.6532)

	stores, err := repo.SearchNear(context.Background(), center, 5000, 50)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{near.ID, mid.ID}, onlyIDs(stores, near.ID, mid.ID, far.ID))
}
