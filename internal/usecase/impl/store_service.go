package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"delicious/config"
	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/identifier"
	"delicious/internal/domain/repository"
	"delicious/internal/domain/service"
	"delicious/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxSlugAttempts bounds retries when a concurrent write takes the resolved slug.
	maxSlugAttempts = 3

	defaultTopRatedLimit = 10
	maxTopRatedLimit     = 100
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager  repository.TransactionManager
	storeRepo  repository.StoreRepository
	reviewRepo repository.ReviewRepository
	photos     service.PhotoStorage
	qrcode     service.QRCodeService
	discovery  config.DiscoveryConfig
	appHost    string
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	StoreRepo  repository.StoreRepository
	ReviewRepo repository.ReviewRepository
	Photos     service.PhotoStorage
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:  params.TxManager,
		storeRepo:  params.StoreRepo,
		reviewRepo: params.ReviewRepo,
		photos:     params.Photos,
		qrcode:     params.QRCode,
		discovery:  discoverySettings(params.Config),
		appHost:    appHost(params.Config),
		logger:     params.Logger,
	}
}

func discoverySettings(cfg *config.Config) config.DiscoveryConfig {
	settings := config.DiscoveryConfig{
		SearchLimit:         5,
		NearLimit:           10,
		DefaultRadiusMeters: 10000,
		MaxRadiusMeters:     50000,
		TopRatedLimit:       defaultTopRatedLimit,
		PageSize:            6,
	}
	if cfg == nil || cfg.Discovery == nil {
		return settings
	}

	d := cfg.Discovery
	if d.SearchLimit > 0 {
		settings.SearchLimit = d.SearchLimit
	}
	if d.NearLimit > 0 {
		settings.NearLimit = d.NearLimit
	}
	if d.DefaultRadiusMeters > 0 {
		settings.DefaultRadiusMeters = d.DefaultRadiusMeters
	}
	if d.MaxRadiusMeters > 0 {
		settings.MaxRadiusMeters = d.MaxRadiusMeters
	}
	if d.TopRatedLimit > 0 {
		settings.TopRatedLimit = d.TopRatedLimit
	}
	if d.PageSize > 0 {
		settings.PageSize = d.PageSize
	}

	return settings
}

func appHost(cfg *config.Config) string {
	if cfg == nil || cfg.App == nil {
		return ""
	}

	return strings.TrimRight(cfg.App.Host, "/")
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore validates the input, stores the photo and inserts the store under a fresh slug.
// The photo is removed again when the insert fails.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		ID:       uuid.New(),
		AuthorID: input.AuthorID,
	}
	if err := srv.applyInput(store, &input.StoreInput); err != nil {
		return nil, err
	}

	photoRef, err := srv.savePhoto(ctx, store, input.Photo)
	if err != nil {
		return nil, err
	}

	err = srv.writeWithSlug(ctx, store, uuid.Nil, func(repo repository.StoreRepository) error {
		return repo.Create(ctx, store)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create store", slog.String("name", store.Name), slog.Any("error", err))
		srv.discardPhoto(ctx, photoRef)

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.String("slug", store.Slug))
	store.Reviews = []*entity.Review{}

	return store, nil
}

// UpdateStore edits a store owned by the editor. The slug follows the name only when it changed.
func (srv *storeService) UpdateStore(ctx context.Context, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, input.StoreID)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to load store")
	}
	if !store.IsOwnedBy(input.EditorID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the author can edit a store")
	}

	previousName := store.Name
	if err := srv.applyInput(store, &input.StoreInput); err != nil {
		return nil, err
	}

	photoRef, err := srv.savePhoto(ctx, store, input.Photo)
	if err != nil {
		return nil, err
	}

	update := func(repo repository.StoreRepository) error {
		return repo.Update(ctx, store)
	}

	if store.Name != previousName {
		err = srv.writeWithSlug(ctx, store, store.ID, update)
	} else {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return update(repoFactory.StoreRepo())
		})
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to update store", slog.Any("storeID", store.ID), slog.Any("error", err))
		srv.discardPhoto(ctx, photoRef)

		return nil, errors.Wrap(mapNotFound(err), "failed to update store")
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, store); err != nil {
		return nil, err
	}

	return store, nil
}

// applyInput validates the editable fields and copies them onto store.
func (srv *storeService) applyInput(store *entity.Store, input *usecase.StoreInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("store name is required")
	}

	location := entity.NewLocation(input.Longitude, input.Latitude, strings.TrimSpace(input.Address))
	if !location.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("store coordinates are out of range")
	}
	if location.Address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("store address is required")
	}

	store.Name = name
	store.Description = strings.TrimSpace(input.Description)
	store.Tags = entity.NormalizeTags(input.Tags)
	store.Location = location

	return nil
}

// savePhoto stores an uploaded photo on store and returns its new ref, or "" without an upload.
func (srv *storeService) savePhoto(ctx context.Context, store *entity.Store, photo *usecase.PhotoUpload) (string, error) {
	if photo == nil {
		return "", nil
	}

	ref, err := srv.photos.Save(ctx, photo.ContentType, photo.Data)
	if err != nil {
		return "", errors.Wrap(err, "failed to store photo")
	}
	store.PhotoRef = ref

	return ref, nil
}

// discardPhoto removes a photo saved for a write that did not commit.
func (srv *storeService) discardPhoto(ctx context.Context, ref string) {
	if ref == "" {
		return
	}

	if err := srv.photos.Delete(ctx, ref); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned photo", slog.String("ref", ref), slog.Any("error", err))
	}
}

// writeWithSlug resolves the slug and runs write in one transaction. When the
// unique slug index rejects the write, resolution is retried against the new count.
func (srv *storeService) writeWithSlug(
	ctx context.Context,
	store *entity.Store,
	excludeID uuid.UUID,
	write func(repo repository.StoreRepository) error,
) error {
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			storeRepo := repoFactory.StoreRepo()

			slug, err := identifier.Resolve(ctx, store.Name, storeRepo, excludeID)
			if err != nil {
				return err
			}
			store.Slug = slug

			return write(storeRepo)
		})
		if !errors.Is(err, repository.ErrSlugTaken) {
			return err
		}

		srv.log(ctx).Warn("Slug taken by a concurrent write, retrying",
			slog.String("slug", store.Slug),
			slog.Int("attempt", attempt),
		)
	}

	return domainerrors.ErrSlugConflict.WrapMessage("could not assign a unique slug to " + store.Name)
}

func (srv *storeService) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	store, err := srv.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to find store by slug")
	}

	return store, enrichWithReviews(ctx, srv.reviewRepo, store)
}

func (srv *storeService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to find store by id")
	}

	return store, enrichWithReviews(ctx, srv.reviewRepo, store)
}

// ListStores returns one page, newest first. A page past the end yields the last page.
func (srv *storeService) ListStores(ctx context.Context, page int) (*usecase.StorePage, error) {
	size := srv.discovery.PageSize
	if page < 1 {
		page = 1
	}

	stores, total, err := srv.storeRepo.List(ctx, (page-1)*size, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	pages := int(math.Ceil(float64(total) / float64(size)))
	result := &usecase.StorePage{Page: page, Pages: pages, Total: total}

	if len(stores) == 0 && total > 0 && page > pages {
		result.OutOfRange = true
		result.Page = pages
		stores, _, err = srv.storeRepo.List(ctx, (pages-1)*size, size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list stores")
		}
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}
	result.Stores = stores

	return result, nil
}

func (srv *storeService) ListTags(ctx context.Context, tag string) (*usecase.TagListing, error) {
	tags, err := srv.storeRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tag = strings.TrimSpace(tag)

	var stores []*entity.Store
	if tag == "" {
		stores, _, err = srv.storeRepo.List(ctx, 0, srv.discovery.PageSize)
	} else {
		stores, err = srv.storeRepo.FindByTag(ctx, tag)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores by tag")
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}

	return &usecase.TagListing{Tags: tags, Tag: tag, Stores: stores}, nil
}

// Search is idempotent; a blank query never reaches the index.
func (srv *storeService) Search(ctx context.Context, query string) ([]*entity.Store, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Store{}, nil
	}

	stores, err := srv.storeRepo.SearchText(ctx, query, srv.discovery.SearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}

	return stores, nil
}

func (srv *storeService) SearchNear(ctx context.Context, point orb.Point, maxDistanceMeters float64) ([]*entity.StoreDistance, error) {
	if math.IsNaN(point.Lon()) || math.IsNaN(point.Lat()) || !(entity.Location{Point: point}).Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates are out of range")
	}
	if math.IsNaN(maxDistanceMeters) || maxDistanceMeters <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}
	maxDistanceMeters = math.Min(maxDistanceMeters, srv.discovery.MaxRadiusMeters)

	stores, err := srv.storeRepo.SearchNear(ctx, point, maxDistanceMeters, srv.discovery.NearLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby stores")
	}

	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}

	results := make([]*entity.StoreDistance, 0, len(stores))
	for _, store := range stores {
		results = append(results, &entity.StoreDistance{
			Store:          store,
			DistanceMeters: geo.Distance(point, store.Location.Point),
		})
	}

	return results, nil
}

// TopRated ranks stores with more than one review. Ties break on store id.
func (srv *storeService) TopRated(ctx context.Context, limit int) ([]*entity.RankedStore, error) {
	if limit <= 0 {
		limit = srv.discovery.TopRatedLimit
	}
	limit = min(limit, maxTopRatedLimit)

	ratings, err := srv.storeRepo.TopRated(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank stores")
	}
	if len(ratings) == 0 {
		return []*entity.RankedStore{}, nil
	}

	ids := make([]uuid.UUID, 0, len(ratings))
	for _, rating := range ratings {
		ids = append(ids, rating.StoreID)
	}

	stores, err := srv.storeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ranked stores")
	}
	if err := enrichWithReviews(ctx, srv.reviewRepo, stores...); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Store, len(stores))
	for _, store := range stores {
		byID[store.ID] = store
	}

	ranked := make([]*entity.RankedStore, 0, len(ratings))
	for _, rating := range ratings {
		store, ok := byID[rating.StoreID]
		if !ok {
			continue
		}
		ranked = append(ranked, &entity.RankedStore{
			Store:         store,
			AverageRating: rating.AverageRating,
			ReviewCount:   rating.ReviewCount,
		})
	}

	return ranked, nil
}

func (srv *storeService) ResolveSlug(ctx context.Context, name string) (string, error) {
	slug, err := identifier.Resolve(ctx, name, srv.storeRepo, uuid.Nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve slug")
	}

	return slug, nil
}

func (srv *storeService) StoreQRCode(ctx context.Context, slug string) ([]byte, error) {
	store, err := srv.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.Wrap(mapNotFound(err), "failed to find store by slug")
	}

	png, err := srv.qrcode.GenerateStoreQR(srv.appHost + "/store/" + store.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render store QR code")
	}

	return png, nil
}

func (srv *storeService) OpenPhoto(ctx context.Context, ref string) (*service.Photo, error) {
	return srv.photos.Open(ctx, ref)
}
