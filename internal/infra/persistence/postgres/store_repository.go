package postgres

import (
	"context"
	"strings"
	"time"

	"delicious/internal/domain/entity"
	"delicious/internal/domain/repository"
	"delicious/internal/errors"
	"delicious/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// SQL expressions shared by queries and the indexes that serve them.
const (
	storeGeography = `ST_SetSRID(ST_MakePoint(longitude::float8, latitude::float8), 4326)::geography`
	storeDocument  = `to_tsvector('english', name || ' ' || coalesce(description, ''))`
)

const searchTextSQL = `
SELECT id FROM stores
WHERE ` + storeDocument + ` @@ plainto_tsquery('english', @query)
ORDER BY ts_rank(` + storeDocument + `, plainto_tsquery('english', @query)) DESC, id ASC
LIMIT @limit`

const searchNearSQL = `
SELECT id FROM stores
WHERE ST_DWithin(` + storeGeography + `, ST_SetSRID(ST_MakePoint(@lon, @lat), 4326)::geography, @radius)
ORDER BY ST_Distance(` + storeGeography + `, ST_SetSRID(ST_MakePoint(@lon, @lat), 4326)::geography) ASC, id ASC
LIMIT @limit`

// topRatedSQL only uses portable SQL; it runs unchanged on sqlite.
const topRatedSQL = `
SELECT s.id AS store_id,
       CAST(AVG(r.rating) AS DOUBLE PRECISION) AS average_rating,
       COUNT(r.id) AS review_count
FROM stores s
LEFT JOIN reviews r ON r.store_id = s.id
GROUP BY s.id
HAVING COUNT(r.id) > 1
ORDER BY average_rating DESC, s.id ASC
LIMIT ?`

type storeIDRow struct {
	ID uuid.UUID
}

type storeRatingRow struct {
	StoreID       uuid.UUID
	AverageRating float64
	ReviewCount   int64
}

type tagCountRow struct {
	Tag      string
	TagCount int64
}

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// Create inserts the store and its tags. Callers run it inside a transaction.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrSlugTaken
		}

		return translateError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update rewrites the store columns and replaces its tag set.
func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	db := repo.db.WithContext(ctx)
	now := time.Now().UTC()

	result := db.Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":        store.Name,
			"slug":        store.Slug,
			"description": store.Description,
			"longitude":   store.Location.Point.Lon(),
			"latitude":    store.Location.Point.Lat(),
			"address":     store.Location.Address,
			"photo_ref":   store.PhotoRef,
			"updated_at":  now,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrSlugTaken
		}

		return translateError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	if err := db.Where("store_id = ?", store.ID).Delete(&model.StoreTagModel{}).Error; err != nil {
		return translateError(err, "failed to clear store tags")
	}
	if tags := fromTagsDomain(store.ID, store.Tags); len(tags) > 0 {
		if err := db.Create(&tags).Error; err != nil {
			return translateError(err, "failed to write store tags")
		}
	}

	store.UpdatedAt = now

	return nil
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	return repo.first(ctx, "failed to find store by id", "id = ?", id)
}

func (repo *storeRepository) FindBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	return repo.first(ctx, "failed to find store by slug", "slug = ?", slug)
}

func (repo *storeRepository) first(ctx context.Context, details string, query string, args ...any) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.withTags(repo.db.WithContext(ctx)).
		Where(query, args...).
		First(&storeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, translateError(err, details)
	}

	return toStoreDomain(&storeM), nil
}

// FindByIDs loads stores and returns them in the order of ids.
func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	return repo.findByIDs(repo.db.WithContext(ctx), ids)
}

func (repo *storeRepository) findByIDs(db *gorm.DB, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	var storeMs []*model.StoreModel
	err := repo.withTags(db).
		Where("id IN ?", ids).
		Find(&storeMs).Error
	if err != nil {
		return nil, translateError(err, "failed to find stores by ids")
	}

	byID := make(map[uuid.UUID]*model.StoreModel, len(storeMs))
	for _, m := range storeMs {
		byID[m.ID] = m
	}

	stores := make([]*entity.Store, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			stores = append(stores, toStoreDomain(m))
		}
	}

	return stores, nil
}

// List returns one page of stores, newest first.
func (repo *storeRepository) List(ctx context.Context, offset, limit int) ([]*entity.Store, int64, error) {
	db := repo.reader(ctx)

	var total int64
	if err := db.Model(&model.StoreModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "failed to count stores")
	}

	var storeMs []*model.StoreModel
	err := repo.withTags(db).
		Order("created_at DESC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&storeMs).Error
	if err != nil {
		return nil, 0, translateError(err, "failed to list stores")
	}

	return toStoresDomain(storeMs), total, nil
}

// SlugsWithPrefix over-matches on LIKE wildcards; the resolver filters the result.
func (repo *storeRepository) SlugsWithPrefix(ctx context.Context, base string, excludeID uuid.UUID) ([]string, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("LOWER(slug) LIKE ?", strings.ToLower(base)+"%")
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var slugs []string
	if err := query.Pluck("slug", &slugs).Error; err != nil {
		return nil, translateError(err, "failed to list slugs")
	}

	return slugs, nil
}

// SearchText runs a PostgreSQL full-text query over name and description.
func (repo *storeRepository) SearchText(ctx context.Context, query string, limit int) ([]*entity.Store, error) {
	return repo.searchIDs(ctx, "failed to search stores", searchTextSQL, map[string]any{
		"query": query,
		"limit": limit,
	})
}

// SearchNear uses PostGIS geography distance in meters.
func (repo *storeRepository) SearchNear(ctx context.Context, point orb.Point, maxDistanceMeters float64, limit int) ([]*entity.Store, error) {
	return repo.searchIDs(ctx, "failed to search nearby stores", searchNearSQL, map[string]any{
		"lon":    point.Lon(),
		"lat":    point.Lat(),
		"radius": maxDistanceMeters,
		"limit":  limit,
	})
}

// searchIDs runs a ranked id query and loads those stores inside one read
// transaction, so both statements hit the same replica snapshot.
func (repo *storeRepository) searchIDs(ctx context.Context, details, query string, args map[string]any) ([]*entity.Store, error) {
	var stores []*entity.Store
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Transaction(func(tx *gorm.DB) error {
		var rows []storeIDRow
		if err := tx.Raw(query, args).Scan(&rows).Error; err != nil {
			return translateError(err, details)
		}

		found, err := repo.findByIDs(tx, idsOf(rows))
		if err != nil {
			return err
		}
		stores = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stores, nil
}

// TopRated returns the review aggregate of the best rated stores.
func (repo *storeRepository) TopRated(ctx context.Context, limit int) ([]repository.StoreRating, error) {
	var rows []storeRatingRow
	err := repo.reader(ctx).
		Raw(topRatedSQL, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to rank stores")
	}

	ratings := make([]repository.StoreRating, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, repository.StoreRating(row))
	}

	return ratings, nil
}

// ListTags counts stores per tag.
func (repo *storeRepository) ListTags(ctx context.Context) ([]entity.TagCount, error) {
	var rows []tagCountRow
	err := repo.reader(ctx).
		Model(&model.StoreTagModel{}).
		Select("tag, COUNT(*) AS tag_count").
		Group("tag").
		Order("tag_count DESC").
		Order("tag ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "failed to list tags")
	}

	tags := make([]entity.TagCount, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, entity.TagCount{Tag: row.Tag, Count: row.TagCount})
	}

	return tags, nil
}

// FindByTag returns the stores carrying tag, newest first.
func (repo *storeRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Store, error) {
	db := repo.reader(ctx)

	var storeMs []*model.StoreModel
	err := repo.withTags(db).
		Where("id IN (?)", db.Model(&model.StoreTagModel{}).Select("store_id").Where("tag = ?", tag)).
		Order("created_at DESC").
		Order("id ASC").
		Find(&storeMs).Error
	if err != nil {
		return nil, translateError(err, "failed to find stores by tag")
	}

	return toStoresDomain(storeMs), nil
}

// reader routes to a replica when one is configured. The returned session is
// safe to reuse for several statements.
func (repo *storeRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read).Session(&gorm.Session{})
}

func (repo *storeRepository) withTags(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tag ASC")
	})
}

func idsOf(rows []storeIDRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids
}
