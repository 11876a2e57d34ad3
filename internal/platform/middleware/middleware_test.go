// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/platform/ctxutil"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/middleware"
	"github.com/taibuivan/bazaar/internal/platform/sec"
)

type stubVerifier map[string]*sec.AuthClaims

func (s stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

/*
TestLocale checks header, query and default precedence.
*/
func TestLocale(t *testing.T) {
	negotiator, err := locale.NewNegotiator("uz", []string{"uz", "ru"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		query  string
		want   locale.Code
	}{
		{"default", "", "", locale.Uzbek},
		{"header", "ru-RU,ru;q=0.9", "", locale.Russian},
		{"query", "", "ru", locale.Russian},
		{"header_beats_query", "uz", "ru", locale.Uzbek},
		{"unsupported_header_falls_to_query", "de-DE", "ru", locale.Russian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen locale.Code
			handler := middleware.Locale(negotiator)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
				seen = ctxutil.GetLocale(request.Context())
			}))

			request := httptest.NewRequest(http.MethodGet, "/ads?lang="+tt.query, nil)
			if tt.header != "" {
				request.Header.Set("Accept-Language", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want.String(), recorder.Header().Get("Content-Language"))
		})
	}
}

/*
TestLocale_Body reads "lang" from a JSON body and leaves the body intact.
*/
func TestLocale_Body(t *testing.T) {
	negotiator, err := locale.NewNegotiator("uz", []string{"uz", "ru"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		contentType string
		query       string
		body        string
		want        locale.Code
	}{
		{"json_body", "application/json", "", `{"lang": "ru", "ad_id": 1}`, locale.Russian},
		{"json_with_charset", "application/json; charset=utf-8", "", `{"lang": "ru-RU"}`, locale.Russian},
		{"query_beats_body", "application/json", "uz", `{"lang": "ru"}`, locale.Uzbek},
		{"malformed_json", "application/json", "", `{"lang": `, locale.Uzbek},
		{"unsupported_lang", "application/json", "", `{"lang": "de"}`, locale.Uzbek},
		{"not_json", "text/plain", "", `{"lang": "ru"}`, locale.Uzbek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen locale.Code
			var body string
			handler := middleware.Locale(negotiator)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
				seen = ctxutil.GetLocale(request.Context())
				raw, err := io.ReadAll(request.Body)
				require.NoError(t, err)
				body = string(raw)
			}))

			request := httptest.NewRequest(http.MethodPost, "/favorites?lang="+tt.query, strings.NewReader(tt.body))
			request.Header.Set("Content-Type", tt.contentType)
			handler.ServeHTTP(httptest.NewRecorder(), request)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.body, body)
		})
	}
}

/*
TestAuthorization covers anonymous, seller and admin access on guarded routes.
*/
func TestAuthorization(t *testing.T) {
	verifier := stubVerifier{
		"approved": {UserID: 1, Role: sec.RoleSeller, Status: sec.StatusApproved},
		"pending":  {UserID: 2, Role: sec.RoleSeller, Status: sec.StatusPending},
		"admin":    {UserID: 3, Role: sec.RoleAdmin, Status: sec.StatusApproved},
	}

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(verifier))
	router.Get("/public", okHandler)
	router.With(middleware.RequireAuth).Get("/me", okHandler)
	router.With(middleware.RequireApprovedSeller).Get("/my-ads", okHandler)
	router.With(middleware.RequireRole(sec.RoleAdmin)).Get("/admin", okHandler)

	tests := []struct {
		name       string
		path       string
		auth       string
		wantStatus int
	}{
		{"anonymous_public", "/public", "", http.StatusOK},
		{"bad_scheme", "/public", "Basic abc", http.StatusUnauthorized},
		{"bad_token", "/public", "Bearer nope", http.StatusUnauthorized},
		{"anonymous_me", "/me", "", http.StatusUnauthorized},
		{"pending_seller", "/my-ads", "Bearer pending", http.StatusForbidden},
		{"approved_seller", "/my-ads", "Bearer approved", http.StatusOK},
		{"admin_as_seller", "/my-ads", "Bearer admin", http.StatusOK},
		{"seller_on_admin", "/admin", "Bearer approved", http.StatusForbidden},
		{"admin", "/admin", "Bearer admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.auth != "" {
				request.Header.Set("Authorization", tt.auth)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestRateLimiter rejects requests beyond the burst per client IP.
*/
func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 2)
	handler := limiter.Middleware()(okHandler)

	statuses := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", "10.0.0.1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.Header.Set("X-Real-IP", "10.0.0.2")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, other)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestPanicRecovery turns a panic into a 500 envelope.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))
}
