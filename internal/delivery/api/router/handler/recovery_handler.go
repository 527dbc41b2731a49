package handler

import (
	"log/slog"

	"delicious/internal/delivery/api/response"
	"delicious/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// forgotMessage is returned whether or not the account exists.
const forgotMessage = "If an account exists for that email, a password reset link has been sent."

// RecoveryHandlerParams holds dependencies for RecoveryHandler, injected by Fx.
type RecoveryHandlerParams struct {
	fx.In

	RecoveryUC usecase.RecoveryUsecase
	Logger     *slog.Logger
}

// RecoveryHandler serves the password reset flow.
type RecoveryHandler struct {
	recoveryUC usecase.RecoveryUsecase
	logger     *slog.Logger
}

// NewRecoveryHandler is the constructor for RecoveryHandler
func NewRecoveryHandler(params RecoveryHandlerParams) *RecoveryHandler {
	return &RecoveryHandler{
		recoveryUC: params.RecoveryUC,
		logger:     params.Logger,
	}
}

// ForgotRequest represents the request body for asking a reset link
type ForgotRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ResetRequest represents the request body for choosing a new password
type ResetRequest struct {
	Password        string `json:"password" form:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" validate:"required,eqfield=Password"`
}

// Forgot issues a reset link. The answer does not reveal whether the email is registered.
func (h *RecoveryHandler) Forgot(c echo.Context) error {
	var req ForgotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.recoveryUC.RequestReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": forgotMessage})
}

// ValidateReset checks a reset token before the new password form is shown.
func (h *RecoveryHandler) ValidateReset(c echo.Context) error {
	if _, err := h.recoveryUC.ValidateToken(c.Request().Context(), c.Param("token")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"valid": true})
}

// Reset consumes the token, sets the password and signs the user in.
func (h *RecoveryHandler) Reset(c echo.Context) error {
	var req ResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.recoveryUC.ConsumeToken(c.Request().Context(), c.Param("token"), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &AuthResponse{
		User:        toUserResponse(out.User),
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
	})
}
