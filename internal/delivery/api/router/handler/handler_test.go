package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"delicious/config"
	"delicious/internal/delivery/api/validator"
	deliverycontext "delicious/internal/delivery/context"
	"delicious/internal/domain/entity"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/service"
	mockUC "delicious/internal/mocks/usecase"
	"delicious/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		accountUC := mockUC.NewMockAccountUsecase(t)
		h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: newDiscardLogger()})
		user := &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

		accountUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cretpass"}).
			Return(&usecase.AuthOutput{User: user, AccessToken: "jwt", ExpiresAt: time.Now()}, nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register",
			`{"name":"Ada","email":"ada@example.com","password":"s3cretpass","password_confirm":"s3cretpass"}`), rec)

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var out AuthResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		accountUC := mockUC.NewMockAccountUsecase(t)
		h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: newDiscardLogger()})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register",
			`{"name":"Ada","email":"ada@example.com","password":"s3cretpass","password_confirm":"other"}`), rec)

		require.NoError(t, h.Register(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "password_confirm")
	})
}

func TestAccountHandler_GetAccount_RequiresCaller(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account", nil), rec)

	require.NoError(t, h.GetAccount(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_ToggleHeart(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	storeID := uuid.New()

	accountUC.EXPECT().ToggleHeart(mock.Anything, userID, storeID).Return(true, nil).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/stores/"+storeID.String()+"/heart", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.ToggleHeart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hearted":true`)
}

func TestRecoveryHandler_Forgot_SameAnswerForUnknownEmail(t *testing.T) {
	recoveryUC := mockUC.NewMockRecoveryUsecase(t)
	h := NewRecoveryHandler(RecoveryHandlerParams{RecoveryUC: recoveryUC, Logger: newDiscardLogger()})

	recoveryUC.EXPECT().RequestReset(mock.Anything, "ada@example.com").
		Return(&usecase.RequestResetOutput{AccountFound: true}, nil).Once()
	recoveryUC.EXPECT().RequestReset(mock.Anything, "ghost@example.com").
		Return(&usecase.RequestResetOutput{AccountFound: false}, nil).Once()

	bodies := make([]string, 0, 2)
	for _, email := range []string{"ada@example.com", "ghost@example.com"} {
		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/account/forgot", `{"email":"`+email+`"}`), rec)

		require.NoError(t, h.Forgot(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		bodies = append(bodies, string(decodeEnvelope(t, rec).Data))
	}

	assert.Equal(t, bodies[0], bodies[1])
}

func TestRecoveryHandler_ValidateReset_Expired(t *testing.T) {
	recoveryUC := mockUC.NewMockRecoveryUsecase(t)
	h := NewRecoveryHandler(RecoveryHandlerParams{RecoveryUC: recoveryUC, Logger: newDiscardLogger()})

	recoveryUC.EXPECT().ValidateToken(mock.Anything, "stale").Return(nil, domainerrors.ErrInvalidOrExpiredToken).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/account/reset/stale", nil), rec)
	c.SetParamNames("token")
	c.SetParamValues("stale")

	require.NoError(t, h.ValidateReset(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RESET_TOKEN_INVALID", decodeEnvelope(t, rec).Error.Code)
}

func TestStoreHandler_CreateStore_Multipart(t *testing.T) {
	storeUC := mockUC.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})
	userID := uuid.New()
	pngHeader := []byte("\x89PNG\r\n\x1a\n0000")

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("name", "Corner Bakery"))
	require.NoError(t, w.WriteField("description", "Bread"))
	require.NoError(t, w.WriteField("tags", "Vegan"))
	require.NoError(t, w.WriteField("tags", "Family Friendly"))
	require.NoError(t, w.WriteField("lng", "-79.3832"))
	require.NoError(t, w.WriteField("lat", "43.6532"))
	require.NoError(t, w.WriteField("address", "1 Front St"))
	part, err := w.CreateFormFile("photo", "bread.png")
	require.NoError(t, err)
	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	storeUC.EXPECT().CreateStore(mock.Anything, mock.MatchedBy(func(in *usecase.CreateStoreInput) bool {
		return in.AuthorID == userID &&
			in.Name == "Corner Bakery" &&
			assert.ObjectsAreEqual([]string{"Vegan", "Family Friendly"}, in.Tags) &&
			in.Longitude == -79.3832 && in.Latitude == 43.6532 &&
			in.Photo != nil && in.Photo.ContentType == "image/png" && bytes.Equal(in.Photo.Data, pngHeader)
	})).Return(&entity.Store{
		ID:       uuid.New(),
		Name:     "Corner Bakery",
		Slug:     "corner-bakery",
		AuthorID: userID,
		Location: entity.NewLocation(-79.3832, 43.6532, "1 Front St"),
	}, nil).Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/stores", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.CreateStore(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var out StoreResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "corner-bakery", out.Slug)
	assert.Equal(t, [2]float64{-79.3832, 43.6532}, out.Location.Coordinates)
	assert.Equal(t, "Point", out.Location.Type)
}

func TestStoreHandler_UpdateStore_Forbidden(t *testing.T) {
	storeUC := mockUC.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})
	storeID := uuid.New()

	storeUC.EXPECT().UpdateStore(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrForbidden).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/stores/"+storeID.String(),
		`{"name":"Corner Bakery","address":"1 Front St","lng":1,"lat":2}`), rec)
	c.SetParamNames("id")
	c.SetParamValues(storeID.String())
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, h.UpdateStore(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStoreHandler_ListStores(t *testing.T) {
	t.Run("passes the page through", func(t *testing.T) {
		storeUC := mockUC.NewMockStoreUsecase(t)
		h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

		storeUC.EXPECT().ListStores(mock.Anything, 9).
			Return(&usecase.StorePage{Page: 2, Pages: 2, Total: 7, OutOfRange: true}, nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores?page=9", nil), rec)

		require.NoError(t, h.ListStores(c))

		var out StorePageResponse
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
		assert.Equal(t, 2, out.Page)
		assert.True(t, out.OutOfRange)
		assert.Empty(t, out.Stores)
	})

	t.Run("rejects a non numeric page", func(t *testing.T) {
		storeUC := mockUC.NewMockStoreUsecase(t)
		h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores?page=two", nil), rec)

		require.NoError(t, h.ListStores(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStoreHandler_StoreQRCode(t *testing.T) {
	storeUC := mockUC.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

	storeUC.EXPECT().StoreQRCode(mock.Anything, "corner-bakery").Return([]byte("png"), nil).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/store/corner-bakery/qr", nil), rec)
	c.SetParamNames("slug")
	c.SetParamValues("corner-bakery")

	require.NoError(t, h.StoreQRCode(c))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png", rec.Body.String())
}

func TestStoreHandler_Photo(t *testing.T) {
	storeUC := mockUC.NewMockStoreUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

	storeUC.EXPECT().OpenPhoto(mock.Anything, "abc.jpg").Return(&service.Photo{
		Body:        io.NopCloser(strings.NewReader("jpeg-bytes")),
		ContentType: "image/jpeg",
	}, nil).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/uploads/abc.jpg", nil), rec)
	c.SetParamNames("ref")
	c.SetParamValues("abc.jpg")

	require.NoError(t, h.Photo(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestDiscoveryHandler_Near(t *testing.T) {
	cfg := &config.Config{Discovery: &config.DiscoveryConfig{DefaultRadiusMeters: 2500}}

	t.Run("uses the default radius", func(t *testing.T) {
		storeUC := mockUC.NewMockStoreUsecase(t)
		h := NewDiscoveryHandler(DiscoveryHandlerParams{StoreUC: storeUC, Config: cfg, Logger: newDiscardLogger()})
		store := &entity.Store{ID: uuid.New(), Slug: "a", Location: entity.NewLocation(-79.38, 43.65, "x")}

		storeUC.EXPECT().SearchNear(mock.Anything, orb.Point{-79.38, 43.65}, float64(2500)).
			Return([]*entity.StoreDistance{{Store: store, DistanceMeters: 12.5}}, nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/stores/near?lng=-79.38&lat=43.65", nil), rec)

		require.NoError(t, h.Near(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"distance_meters":12.5`)
	})

	t.Run("missing coordinates", func(t *testing.T) {
		storeUC := mockUC.NewMockStoreUsecase(t)
		h := NewDiscoveryHandler(DiscoveryHandlerParams{StoreUC: storeUC, Config: cfg, Logger: newDiscardLogger()})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/stores/near?lat=43.65", nil), rec)

		require.NoError(t, h.Near(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDiscoveryHandler_Slug(t *testing.T) {
	storeUC := mockUC.NewMockStoreUsecase(t)
	h := NewDiscoveryHandler(DiscoveryHandlerParams{StoreUC: storeUC, Logger: newDiscardLogger()})

	storeUC.EXPECT().ResolveSlug(mock.Anything, "Café Olympia").Return("cafe-olympia-2", nil).Once()

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/slug?name=Caf%C3%A9+Olympia", nil), rec)

	require.NoError(t, h.Slug(c))

	assert.Contains(t, rec.Body.String(), `"slug":"cafe-olympia-2"`)
}

func TestReviewHandler_AddReview(t *testing.T) {
	t.Run("appends for the caller", func(t *testing.T) {
		reviewUC := mockUC.NewMockReviewUsecase(t)
		h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: newDiscardLogger()})
		userID := uuid.New()
		storeID := uuid.New()

		reviewUC.EXPECT().AddReview(mock.Anything, &usecase.AddReviewInput{AuthorID: userID, StoreID: storeID, Rating: 4, Text: "Lovely"}).
			Return(&entity.Review{ID: uuid.New(), AuthorID: userID, StoreID: storeID, Rating: 4, Text: "Lovely"}, nil).Once()

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/reviews/"+storeID.String(), `{"rating":4,"text":"Lovely"}`), rec)
		c.SetParamNames("storeId")
		c.SetParamValues(storeID.String())
		deliverycontext.SetUserID(c, userID)

		require.NoError(t, h.AddReview(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed store id", func(t *testing.T) {
		reviewUC := mockUC.NewMockReviewUsecase(t)
		h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: newDiscardLogger()})

		e := newTestEcho()
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/reviews/nope", `{"rating":4,"text":"x"}`), rec)
		c.SetParamNames("storeId")
		c.SetParamValues("nope")
		deliverycontext.SetUserID(c, uuid.New())

		require.NoError(t, h.AddReview(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
