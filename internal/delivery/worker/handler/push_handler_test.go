package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"delicious/config"
	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/constants"
	"delicious/internal/domain/service"
	"delicious/internal/errors"
	mockSvc "delicious/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockMailer) {
	t.Helper()

	mailer := mockSvc.NewMockMailer(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mailer: mailer,
	})

	return h, mailer
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodedEvent(t *testing.T, event *service.MailEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func resetEvent() *service.MailEvent {
	return &service.MailEvent{
		EventID:      "evt-1",
		To:           "ada@example.com",
		Name:         "Ada",
		Subject:      "Password Reset",
		TemplateName: constants.TemplatePasswordReset,
		Data:         map[string]string{"resetURL": "http://localhost:7777/account/reset/abc"},
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivers the mail with the attribute request id", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, developConfig())

		mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("*service.MailMessage")).
			Run(func(ctx context.Context, msg *service.MailMessage) {
				assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
				assert.Equal(t, "ada@example.com", msg.To)
				assert.Equal(t, constants.TemplatePasswordReset, msg.TemplateName)
				assert.Equal(t, "http://localhost:7777/account/reset/abc", msg.Data["resetURL"])
			}).
			Return(nil).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, resetEvent()), map[string]string{"request_id": "req-7"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, developConfig())

		mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, resetEvent()), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("malformed mail is acknowledged", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, developConfig())

		mailer.EXPECT().Send(mock.Anything, mock.Anything).
			Return(errors.Wrap(service.ErrMalformedMail, "bad address")).Once()

		rec := doPush(h, pushBody(t, encodedEvent(t, resetEvent()), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, developConfig())

		rec := doPush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("{not json")), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("unparseable envelope", func(t *testing.T) {
		h, _ := newTestPushHandler(t, developConfig())

		rec := doPush(h, "{")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		rec := doPush(h, pushBody(t, encodedEvent(t, resetEvent()), nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(pushBody(t, encodedEvent(t, resetEvent()), nil)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer signed")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
