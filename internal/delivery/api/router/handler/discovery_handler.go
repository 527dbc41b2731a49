package handler

import (
	"log/slog"
	"strconv"

	"delicious/config"
	"delicious/internal/delivery/api/response"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const fallbackRadiusMeters = 10000

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// DiscoveryHandler serves typeahead search, nearby stores, top rated and slug previews.
type DiscoveryHandler struct {
	storeUC       usecase.StoreUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	radius := float64(fallbackRadiusMeters)
	if params.Config != nil && params.Config.Discovery != nil && params.Config.Discovery.DefaultRadiusMeters > 0 {
		radius = params.Config.Discovery.DefaultRadiusMeters
	}

	return &DiscoveryHandler{
		storeUC:       params.StoreUC,
		defaultRadius: radius,
		logger:        params.Logger,
	}
}

// Search ranks stores by text relevance. A blank q yields an empty list.
func (h *DiscoveryHandler) Search(c echo.Context) error {
	stores, err := h.storeUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toStoreResponses(stores))
}

// Near returns stores around lng/lat, nearest first.
func (h *DiscoveryHandler) Near(c echo.Context) error {
	var lng, lat float64
	radius := h.defaultRadius

	err := echo.QueryParamsBinder(c).
		MustFloat64("lng", &lng).
		MustFloat64("lat", &lat).
		Float64("radius", &radius).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lng and lat are required numbers"))
	}

	results, err := h.storeUC.SearchNear(c.Request().Context(), orb.Point{lng, lat}, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*NearbyStoreResponse, 0, len(results))
	for _, result := range results {
		out = append(out, &NearbyStoreResponse{
			StoreResponse:  toStoreResponse(result.Store),
			DistanceMeters: result.DistanceMeters,
		})
	}

	return response.OK(c, out)
}

// TopRated lists stores with more than one review by average rating.
func (h *DiscoveryHandler) TopRated(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer"))
		}
		limit = parsed
	}

	ranked, err := h.storeUC.TopRated(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*RankedStoreResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, &RankedStoreResponse{
			Store:         toStoreResponse(r.Store),
			AverageRating: r.AverageRating,
			ReviewCount:   r.ReviewCount,
		})
	}

	return response.OK(c, out)
}

// Slug previews the slug a new store with the given name would receive.
func (h *DiscoveryHandler) Slug(c echo.Context) error {
	slug, err := h.storeUC.ResolveSlug(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"slug": slug})
}
