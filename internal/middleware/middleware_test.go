package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "personal-finance-app"
)

func signed(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "owner_a",
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""
	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), valid), http.StatusOK, "owner_a"},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Bearer {token}"},
		{"expired", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), expired), http.StatusUnauthorized, "Token has expired"},
		{"wrong secret", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte("other"), valid), http.StatusUnauthorized, "Invalid token"},
		{"wrong algorithm", "Bearer " + signed(t, jwt.SigningMethodHS384, []byte(testSecret), valid), http.StatusUnauthorized, "Invalid token"},
		{"wrong issuer", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer), http.StatusUnauthorized, "Invalid token"},
		{"no subject", "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), noSubject), http.StatusUnauthorized, "Invalid token claims"},
	}

	r := newRouter(AuthMiddleware(testSecret, testIssuer))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	r := newRouter(StructuredLoggingMiddleware(discardLogger()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	assert.NotNil(t, GetLoggerFromCtx(req.Context()))
}

func TestRateLimit_KeysByOwner(t *testing.T) {
	l, err := NewLimiter("2-M", nil)
	require.NoError(t, err)

	token := "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "owner_a"})
	r := newRouter(AuthMiddleware(testSecret, ""), RateLimit(l))

	codes := make([]int, 0, 3)
	for n := 0; n < 3; n++ {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := "Bearer " + signed(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{Subject: "owner_b"})
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", other)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewLimiter_RejectsBadFormat(t *testing.T) {
	_, err := NewLimiter("ten per minute", nil)
	assert.Error(t, err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFinanceEvent(t *testing.T) {
	idParam := gin.Params{{Key: "id", Value: "txn-1"}}

	tests := []struct {
		name      string
		method    string
		route     string
		params    gin.Params
		query     map[string][]string
		wantEvent string
		wantProps map[string]any
		wantOK    bool
	}{
		{
			name: "update", method: http.MethodPut, route: "/api/v1/transactions/:id", params: idParam,
			wantEvent: "transaction_updated", wantOK: true,
			wantProps: map[string]any{"resource": "transaction", "transaction_id": "txn-1"},
		},
		{
			name: "list with filters", method: http.MethodGet, route: "/api/v1/transactions",
			query:     map[string][]string{"statusCode": {"NEW"}, "amountMin": {"10"}},
			wantEvent: "transaction_listed", wantOK: true,
			wantProps: map[string]any{"resource": "transaction", "filters": []string{"amountMin", "statusCode"}},
		},
		{
			name: "stat", method: http.MethodGet, route: "/api/v1/transactions/stats/balance",
			wantEvent: "stats_viewed", wantOK: true,
			wantProps: map[string]any{"resource": "transaction", "stat": "balance"},
		},
		{
			name: "bank delete", method: http.MethodDelete, route: "/api/v1/banks/:id", params: gin.Params{{Key: "id", Value: "b1"}},
			wantEvent: "bank_deleted", wantOK: true,
			wantProps: map[string]any{"resource": "bank", "bank_id": "b1"},
		},
		{name: "report download", method: http.MethodGet, route: "/api/v1/reports/transactions.xlsx"},
		{name: "unmatched route", method: http.MethodGet, route: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, props, ok := financeEvent(tt.method, tt.route, tt.params, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEvent, event)
			if tt.wantOK {
				assert.Equal(t, tt.wantProps, props)
			}
		})
	}
}

func TestPosthogMiddleware_UnconfiguredClientPassesThrough(t *testing.T) {
	r := newRouter(PosthogMiddleware(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
