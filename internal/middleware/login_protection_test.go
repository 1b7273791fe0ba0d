// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLoginProtection() *LoginProtection {
	return NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           100,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})
}

func TestLoginProtection_LockoutAfterMaxFailures(t *testing.T) {
	lp := testLoginProtection()

	locked, _ := lp.RecordFailedAttempt("target@example.com")
	assert.False(t, locked)
	locked, _ = lp.RecordFailedAttempt("target@example.com")
	assert.False(t, locked)

	locked, duration := lp.RecordFailedAttempt("target@example.com")
	assert.True(t, locked)
	assert.Equal(t, time.Minute, duration)

	isLocked, remaining := lp.IsAccountLocked("target@example.com")
	assert.True(t, isLocked)
	assert.Greater(t, remaining, time.Duration(0))

	// Other accounts are unaffected
	isLocked, _ = lp.IsAccountLocked("other@example.com")
	assert.False(t, isLocked)
}

func TestLoginProtection_SuccessClearsAttempts(t *testing.T) {
	lp := testLoginProtection()

	lp.RecordFailedAttempt("user@example.com")
	lp.RecordFailedAttempt("user@example.com")
	assert.Equal(t, 1, lp.GetRemainingAttempts("user@example.com"))

	lp.RecordSuccessfulLogin("user@example.com")
	assert.Equal(t, 3, lp.GetRemainingAttempts("user@example.com"))
}

func TestLoginProtection_RemainingAttempts(t *testing.T) {
	lp := testLoginProtection()

	assert.Equal(t, 3, lp.GetRemainingAttempts("fresh@example.com"))
	lp.RecordFailedAttempt("fresh@example.com")
	assert.Equal(t, 2, lp.GetRemainingAttempts("fresh@example.com"))
}

func TestLoginProtection_MiddlewareOnlyLimitsPost(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       0.0001,
		IPBurst:           1,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// The burst of one allows the first POST, then the IP is limited
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// GET requests bypass the limiter
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1:1234", getClientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.5")
	assert.Equal(t, "203.0.113.5", getClientIP(r))

	r.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", getClientIP(r))
}
