// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamour/internal/auth"
	"hamour/internal/middleware"
	"hamour/internal/session"
)

func newAuthRouter(t *testing.T, authn auth.Authenticator, withSessions bool) chi.Router {
	t.Helper()
	var sessions *session.Store
	r := chi.NewRouter()
	if withSessions {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { client.Close() })
		sessions = session.NewStore(client, false)
		r.Use(middleware.LoadSession(sessions))
	}

	h := NewAuth(authn, sessions)
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/logout", h.Logout)
	r.Get("/api/auth/session", h.Session)
	return r
}

func send(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestLogin_SessionLifecycle(t *testing.T) {
	r := newAuthRouter(t, auth.SharedSecret("admin123"), true)

	rr := send(r, http.MethodPost, "/api/auth/login", `{"secret":"admin123"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)

	rr = send(r, http.MethodGet, "/api/auth/session", "", cookies...)
	assert.JSONEq(t, `{"authenticated":true}`, rr.Body.String())

	rr = send(r, http.MethodPost, "/api/auth/logout", "", cookies...)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = send(r, http.MethodGet, "/api/auth/session", "", cookies...)
	assert.JSONEq(t, `{"authenticated":false}`, rr.Body.String())
}

func TestLogin_WrongSecret(t *testing.T) {
	r := newAuthRouter(t, auth.SharedSecret("admin123"), true)

	rr := send(r, http.MethodPost, "/api/auth/login", `{"secret":"guess"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false}`, rr.Body.String())
	assert.Empty(t, rr.Result().Cookies())
}

func TestLogin_WithoutSessions(t *testing.T) {
	r := newAuthRouter(t, auth.SharedSecret("admin123"), false)

	rr := send(r, http.MethodPost, "/api/auth/login", `{"secret":"admin123"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Result().Cookies())

	rr = send(r, http.MethodGet, "/api/auth/session", "")
	assert.JSONEq(t, `{"authenticated":false}`, rr.Body.String())
}

func TestLogin_BadJSON(t *testing.T) {
	r := newAuthRouter(t, auth.SharedSecret("admin123"), false)
	rr := send(r, http.MethodPost, "/api/auth/login", `secret=admin123`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

type failingAuthenticator struct{}

func (failingAuthenticator) Authenticate(context.Context, string) (bool, error) {
	return false, errors.New("auth backend down")
}

func TestLogin_AuthenticatorError(t *testing.T) {
	r := newAuthRouter(t, failingAuthenticator{}, false)
	rr := send(r, http.MethodPost, "/api/auth/login", `{"secret":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
