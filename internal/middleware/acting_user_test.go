package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers map[string]domain.User

func (s stubUsers) GetUser(_ context.Context, userID string) (*domain.User, error) {
	if userID == "broken" {
		return nil, errors.New("directory offline")
	}
	u, ok := s[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &u, nil
}

var directory = stubUsers{
	"u-1": {UserID: "u-1", Name: "John Doe", Role: domain.RoleVP, Department: "Sales"},
	"u-3": {UserID: "u-3", Name: "Mike Wilson", Role: domain.RoleEmployee, Department: "Sales"},
}

func newActingRouter(allowRoleSwitch bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ActingUserMiddleware(directory, "u-1", allowRoleSwitch))
	r.GET("/whoami", func(c *gin.Context) {
		u, ok := middleware.GetActingUserFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.UserID, "role": u.Role})
	})
	return r
}

func whoami(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActingUserMiddleware(t *testing.T) {
	r := newActingRouter(true)

	w := whoami(r, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u-1","role":"VP"}`, w.Body.String())

	w = whoami(r, map[string]string{middleware.UserIDHeader: "u-3"})
	assert.JSONEq(t, `{"id":"u-3","role":"Employee"}`, w.Body.String())

	w = whoami(r, map[string]string{middleware.UserIDHeader: "u-3", middleware.RoleHeader: "Admin"})
	assert.JSONEq(t, `{"id":"u-3","role":"Admin"}`, w.Body.String())

	// Unknown roles pass through and rank lowest downstream.
	w = whoami(r, map[string]string{middleware.RoleHeader: "Intern"})
	assert.JSONEq(t, `{"id":"u-1","role":"Intern"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, whoami(r, map[string]string{middleware.UserIDHeader: "nobody"}).Code)
	assert.Equal(t, http.StatusInternalServerError, whoami(r, map[string]string{middleware.UserIDHeader: "broken"}).Code)
}

func TestActingUserMiddleware_RoleSwitchDisabled(t *testing.T) {
	r := newActingRouter(false)

	w := whoami(r, map[string]string{middleware.UserIDHeader: "u-3", middleware.RoleHeader: "Admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u-3","role":"Employee"}`, w.Body.String())
}

func TestActingUserMiddleware_NoDefaultUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ActingUserMiddleware(directory, "", true))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, whoami(r, nil).Code)
	assert.Equal(t, http.StatusOK, whoami(r, map[string]string{middleware.UserIDHeader: "u-3"}).Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)

	limiter, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := gin.New()
	r.Use(middleware.RateLimit(limiter))
	r.GET("/whoami", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, whoami(r, nil).Code)
	assert.Equal(t, http.StatusOK, whoami(r, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, whoami(r, nil).Code)
}
