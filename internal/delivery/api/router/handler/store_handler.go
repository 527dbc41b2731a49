package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"delicious/internal/delivery/api/response"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/errors"
	"delicious/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// photoField is the multipart field carrying the store photo.
const photoField = "photo"

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler serves store pages, editing, tags, QR codes and photos.
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// StoreRequest is the multipart or JSON body of a store write.
type StoreRequest struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description"`
	Tags        []string `json:"tags" form:"tags"`
	Longitude   float64  `json:"lng" form:"lng" validate:"gte=-180,lte=180"`
	Latitude    float64  `json:"lat" form:"lat" validate:"gte=-90,lte=90"`
	Address     string   `json:"address" form:"address" validate:"required"`
}

func (req *StoreRequest) toInput(photo *usecase.PhotoUpload) usecase.StoreInput {
	return usecase.StoreInput{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		Address:     req.Address,
		Photo:       photo,
	}
}

// readPhoto returns the uploaded photo, or nil when the form has none.
func readPhoto(c echo.Context) (*usecase.PhotoUpload, error) {
	header, err := c.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unreadable photo upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded photo")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &usecase.PhotoUpload{ContentType: contentType, Data: data}, nil
}

// CreateStore adds a store authored by the caller.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := readPhoto(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		AuthorID:   userID,
		StoreInput: req.toInput(photo),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toStoreResponse(store))
}

// UpdateStore edits a store owned by the caller.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	storeID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := readPhoto(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.storeUC.UpdateStore(c.Request().Context(), &usecase.UpdateStoreInput{
		StoreID:    storeID,
		EditorID:   userID,
		StoreInput: req.toInput(photo),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toStoreResponse(store))
}

// ListStores returns one page of stores, newest first.
func (h *StoreHandler) ListStores(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer"))
		}
		page = parsed
	}

	result, err := h.storeUC.ListStores(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &StorePageResponse{
		Stores:     toStoreResponses(result.Stores),
		Page:       result.Page,
		Pages:      result.Pages,
		Total:      result.Total,
		OutOfRange: result.OutOfRange,
	})
}

// GetStore returns the public store page data.
func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUC.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toStoreResponse(store))
}

// StoreQRCode renders a PNG linking to the store page.
func (h *StoreHandler) StoreQRCode(c echo.Context) error {
	png, err := h.storeUC.StoreQRCode(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListTags returns the tag cloud and the stores of the selected tag.
func (h *StoreHandler) ListTags(c echo.Context) error {
	listing, err := h.storeUC.ListTags(c.Request().Context(), c.Param("tag"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tags := make([]TagCountResponse, 0, len(listing.Tags))
	for _, tag := range listing.Tags {
		tags = append(tags, TagCountResponse{Tag: tag.Tag, Count: tag.Count})
	}

	return response.OK(c, &TagListingResponse{
		Tags:   tags,
		Tag:    listing.Tag,
		Stores: toStoreResponses(listing.Stores),
	})
}

// Photo streams an uploaded store photo.
func (h *StoreHandler) Photo(c echo.Context) error {
	photo, err := h.storeUC.OpenPhoto(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer photo.Body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, photo.ContentType, photo.Body)
}
