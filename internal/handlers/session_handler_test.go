package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/handlers"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"github.com/jeffleon2/draftea-checkout-gateway/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sessionRouter(t *testing.T, svc handlers.SessionService, hostedURL string) *gin.Engine {
	auth := mocks.NewMockAuthenticator(t)
	auth.EXPECT().Authenticate(mock.Anything, "sk_test").Return(approvedMerchant, nil).Maybe()

	h := handlers.NewSessionHandler(svc, hostedURL)
	router := gin.New()
	group := router.Group("/api", handlers.RequireAPIKey(auth))
	group.POST("/checkout/sessions", h.CreateSession)
	group.GET("/checkout/sessions/:id", h.GetSession)
	return router
}

func authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer sk_test")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createdSession() *models.PaymentSession {
	return &models.PaymentSession{
		ID:          "s-1",
		MerchantID:  "m-1",
		Amount:      4999,
		Currency:    "USD",
		WidgetToken: "wt_0011223344556677",
		Status:      models.SessionRequiresPaymentMethod,
		ExpiresAt:   time.Date(2026, 5, 4, 11, 0, 0, 0, time.UTC),
	}
}

func TestCreateSession_HostedURLFromOrigin(t *testing.T) {
	svc := mocks.NewMockSessionService(t)
	svc.EXPECT().
		CreateSession(mock.Anything, "m-1", mock.MatchedBy(func(r *dto.CreateSessionRequest) bool {
			return r.Amount == 4999 && r.Metadata["order"] == "A-1"
		})).
		Return(createdSession(), nil).
		Once()

	req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout/sessions",
		strings.NewReader(`{"amount":4999,"currency":"usd","metadata":{"order":"A-1"}}`)))
	req.Header.Set("Origin", "https://shop.example/")
	rec := httptest.NewRecorder()
	sessionRouter(t, svc, "http://localhost:5173").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body dto.CreateSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "s-1", body.ID)
	assert.Equal(t, "https://shop.example/checkout/s-1", body.HostedURL)
	assert.Equal(t, "wt_0011223344556677", body.WidgetToken)
	assert.Equal(t, models.SessionRequiresPaymentMethod, body.Status)
}

func TestCreateSession_HostedURLFallsBackToConfigured(t *testing.T) {
	svc := mocks.NewMockSessionService(t)
	svc.EXPECT().CreateSession(mock.Anything, "m-1", mock.Anything).Return(createdSession(), nil).Once()

	rec := httptest.NewRecorder()
	sessionRouter(t, svc, "http://localhost:5173").ServeHTTP(rec,
		authed(httptest.NewRequest(http.MethodPost, "/api/checkout/sessions", strings.NewReader(`{"amount":4999}`))))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hosted_url":"http://localhost:5173/checkout/s-1"`)
}

func TestCreateSession_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "malformed body", body: `{"amount":`, wantStatus: http.StatusBadRequest, wantCode: "invalid_request"},
		{name: "fractional amount", body: `{"amount":49.99}`, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "string amount", body: `{"amount":"4999"}`, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "invalid amount", body: `{"amount":0}`, err: models.ErrInvalidAmount, wantStatus: http.StatusBadRequest, wantCode: "invalid_amount"},
		{name: "store failure", body: `{"amount":10}`, err: models.NewPersistenceError("Failed to create payment session", errors.New("db down")), wantStatus: http.StatusInternalServerError, wantCode: "persistence_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSessionService(t)
			if tt.err != nil {
				svc.EXPECT().CreateSession(mock.Anything, "m-1", mock.Anything).Return(nil, tt.err).Once()
			}

			rec := httptest.NewRecorder()
			sessionRouter(t, svc, "").ServeHTTP(rec,
				authed(httptest.NewRequest(http.MethodPost, "/api/checkout/sessions", strings.NewReader(tt.body))))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			assert.NotContains(t, rec.Body.String(), "db down")
		})
	}
}

func TestGetSession(t *testing.T) {
	svc := mocks.NewMockSessionService(t)
	svc.EXPECT().GetMerchantSession(mock.Anything, "m-1", "s-1").Return(createdSession(), nil).Once()
	svc.EXPECT().GetMerchantSession(mock.Anything, "m-1", "s-other").Return(nil, models.ErrSessionNotFound).Once()

	router := sessionRouter(t, svc, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/checkout/sessions/s-1", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"s-1"`)
	assert.NotContains(t, rec.Body.String(), "wt_")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/api/checkout/sessions/s-other", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
