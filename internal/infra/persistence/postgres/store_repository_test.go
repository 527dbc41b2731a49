package postgres

import (
	"context"
	"strings"
	"testing"

	"delicious/internal/domain/entity"
	"delicious/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	created := seedStore(t, db, "Pizza Place", "pizza-place", "Wifi", "Family Friendly")

	found, err := repo.FindBySlug(ctx, "pizza-place")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, []string{"Family Friendly", "Wifi"}, found.Tags)
	assert.InDelta(t, -79.3832, found.Location.Point.Lon(), 1e-6)
	assert.InDelta(t, 43.6532, found.Location.Point.Lat(), 1e-6)
	assert.Equal(t, "Toronto", found.Location.Address)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_Create_SlugTaken(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, "Pizza", "pizza")

	err := NewStoreRepository(db).Create(context.Background(), &entity.Store{
		ID:       uuid.New(),
		Name:     "Pizza",
		Slug:     "pizza",
		Location: entity.NewLocation(0, 0, "x"),
		AuthorID: uuid.New(),
	})

	assert.ErrorIs(t, err, repository.ErrSlugTaken)
}

func TestStoreRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	store := seedStore(t, db, "Pizza", "pizza", "Wifi")
	seedStore(t, db, "Tacos", "tacos")

	store.Name = "Pizza Palace"
	store.Slug = "pizza-palace"
	store.Tags = []string{"Vegan"}
	require.NoError(t, repo.Update(ctx, store))

	found, err := repo.FindByID(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Palace", found.Name)
	assert.Equal(t, "pizza-palace", found.Slug)
	assert.Equal(t, []string{"Vegan"}, found.Tags)

	store.Slug = "tacos"
	assert.ErrorIs(t, repo.Update(ctx, store), repository.ErrSlugTaken)

	missing := &entity.Store{ID: uuid.New(), Slug: "ghost"}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrStoreNotFound)
}

func TestStoreRepository_SlugsWithPrefix(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	self := seedStore(t, db, "Pizza", "pizza")
	seedStore(t, db, "Pizza", "Pizza-2")
	seedStore(t, db, "Pizza Palace", "pizza-palace")
	seedStore(t, db, "Pizzeria", "pizzeria")
	seedStore(t, db, "Tacos", "tacos")

	// pizza-palace shares the prefix; the resolver drops it later.
	slugs, err := repo.SlugsWithPrefix(ctx, "pizza", uuid.Nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"pizza", "Pizza-2", "pizza-palace"}, slugs)

	slugs, err = repo.SlugsWithPrefix(ctx, "pizza", self.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Pizza-2", "pizza-palace"}, slugs)
}

func TestStoreRepository_FindByIDs_PreservesOrder(t *testing.T) {
	db := newTestDB(t)
	a := seedStore(t, db, "A", "a")
	b := seedStore(t, db, "B", "b")
	c := seedStore(t, db, "C", "c")

	stores, err := NewStoreRepository(db).FindByIDs(context.Background(), []uuid.UUID{c.ID, uuid.New(), a.ID, b.ID})
	require.NoError(t, err)

	require.Len(t, stores, 3)
	assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, []uuid.UUID{stores[0].ID, stores[1].ID, stores[2].ID})
}

func TestStoreRepository_List(t *testing.T) {
	db := newTestDB(t)
	for _, slug := range []string{"a", "b", "c"} {
		seedStore(t, db, slug, slug)
	}

	stores, total, err := NewStoreRepository(db).List(context.Background(), 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	assert.Len(t, stores, 1)
}

func TestStoreRepository_TopRated(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)

	a := seedStore(t, db, "A", "a")
	b := seedStore(t, db, "B", "b")
	single := seedStore(t, db, "Single", "single")
	seedStore(t, db, "Unreviewed", "unreviewed")

	seedReviews(t, db, a.ID, 5, 5)
	seedReviews(t, db, b.ID, 4, 4, 4)
	seedReviews(t, db, single.ID, 5)

	ratings, err := repo.TopRated(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, ratings, 2, "stores with one review or fewer are excluded")
	assert.Equal(t, a.ID, ratings[0].StoreID)
	assert.InDelta(t, 5.0, ratings[0].AverageRating, 1e-9)
	assert.Equal(t, int64(2), ratings[0].ReviewCount)
	assert.Equal(t, b.ID, ratings[1].StoreID)
	assert.InDelta(t, 4.0, ratings[1].AverageRating, 1e-9)
	assert.Equal(t, int64(3), ratings[1].ReviewCount)
}

func TestStoreRepository_TopRated_TieBreaksOnID(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)

	first := seedStore(t, db, "First", "first")
	second := seedStore(t, db, "Second", "second")
	seedReviews(t, db, first.ID, 4, 4)
	seedReviews(t, db, second.ID, 4, 4)

	if second.ID.String() < first.ID.String() {
		first, second = second, first
	}

	ratings, err := repo.TopRated(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, ratings, 1)
	assert.Equal(t, first.ID, ratings[0].StoreID)
}

func TestStoreRepository_Tags(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	wifi := seedStore(t, db, "A", "a", "Wifi", "Vegan")
	seedStore(t, db, "B", "b", "Wifi")
	seedStore(t, db, "C", "c", "Licensed")

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCount{
		{Tag: "Wifi", Count: 2},
		{Tag: "Licensed", Count: 1},
		{Tag: "Vegan", Count: 1},
	}, tags)

	stores, err := repo.FindByTag(ctx, "Vegan")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, wifi.ID, stores[0].ID)
}

func TestStoreRepository_SearchIDs_ReadsOneReplica(t *testing.T) {
	db := newTestDB(t)
	replica := withReplica(t, db)
	repo := NewStoreRepository(db).(*storeRepository)
	ctx := context.Background()

	seedStore(t, db, "Primary Only", "primary-only")
	lagging := seedStore(t, replica, "Replica Bakery", "replica-bakery", "Wifi")

	stores, err := repo.searchIDs(ctx, "failed to search stores",
		`SELECT id FROM stores WHERE name LIKE @pattern ORDER BY name LIMIT @limit`,
		map[string]any{"pattern": "%Bakery%", "limit": 5},
	)

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, lagging.ID, stores[0].ID)
	assert.Equal(t, []string{"Wifi"}, stores[0].Tags)
}

func TestStoreRepository_SearchSQL_Ordering(t *testing.T) {
	normalize := func(sql string) string {
		return strings.Join(strings.Fields(sql), " ")
	}

	t.Run("text search ranks by relevance", func(t *testing.T) {
		sql := normalize(searchTextSQL)

		assert.Contains(t, sql, "WHERE "+storeDocument+" @@ plainto_tsquery('english', @query)")
		assert.Contains(t, sql, "ORDER BY ts_rank("+storeDocument+", plainto_tsquery('english', @query)) DESC, id ASC")
		assert.True(t, strings.HasSuffix(sql, "LIMIT @limit"))
	})

	t.Run("near search orders by distance", func(t *testing.T) {
		sql := normalize(searchNearSQL)
		target := "ST_SetSRID(ST_MakePoint(@lon, @lat), 4326)::geography"

		assert.Contains(t, sql, "WHERE ST_DWithin("+storeGeography+", "+target+", @radius)")
		assert.Contains(t, sql, "ORDER BY ST_Distance("+storeGeography+", "+target+") ASC, id ASC")
		assert.True(t, strings.HasSuffix(sql, "LIMIT @limit"))
	})

	t.Run("indexes match the query expressions", func(t *testing.T) {
		assert.Contains(t, postgresSchema, `CREATE INDEX IF NOT EXISTS idx_stores_location ON stores USING GIST ((`+storeGeography+`))`)
		assert.Contains(t, postgresSchema, `CREATE INDEX IF NOT EXISTS idx_stores_search ON stores USING GIN ((`+storeDocument+`))`)
	})
}
