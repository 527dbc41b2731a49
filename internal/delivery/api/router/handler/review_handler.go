package handler

import (
	"log/slog"

	"delicious/internal/delivery/api/response"
	"delicious/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the review ledger.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddReviewRequest represents the request body of a review.
// Range checks on rating happen in the use case so both paths report the same error.
type AddReviewRequest struct {
	Rating int    `json:"rating" form:"rating"`
	Text   string `json:"text" form:"text"`
}

// AddReview appends a review of the store by the caller.
func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.AddReview(c.Request().Context(), &usecase.AddReviewInput{
		AuthorID: userID,
		StoreID:  storeID,
		Rating:   req.Rating,
		Text:     req.Text,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toReviewResponse(review))
}

// ListReviews returns the reviews of a store, newest first.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	storeID, err := uuidParam(c, "storeId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListByStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toReviewResponses(reviews))
}
