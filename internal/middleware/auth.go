// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request data.
const (
	ContextKeyAccount ContextKey = "account"
	ContextKeyAdmin   ContextKey = "admin"
)

// SessionKeyAccountID is the session key holding the signed-in account ID.
const SessionKeyAccountID = "account_id"

// LoadAccount creates middleware that loads the signed-in account and its
// admin row (if any) into the request context. Anonymous requests pass
// through untouched; a stale session pointing at a deleted account is
// destroyed.
func LoadAccount(sm *scs.SessionManager, queries *store.Queries, admins *service.AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := sm.GetString(r.Context(), SessionKeyAccountID)
			if accountID == "" {
				next.ServeHTTP(w, r)
				return
			}

			account, err := queries.GetAccountByID(r.Context(), accountID)
			if err != nil {
				_ = sm.Destroy(r.Context())
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccount, account)

			admin, ok, err := admins.Resolve(ctx, account)
			if err != nil {
				slog.Error("resolving admin", "account_id", account.ID, "error", err)
			} else if ok {
				ctx = context.WithValue(ctx, ContextKeyAdmin, admin)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccount retrieves the signed-in account from the request context.
// Returns nil for anonymous requests.
func GetAccount(r *http.Request) *store.Account {
	account, ok := r.Context().Value(ContextKeyAccount).(store.Account)
	if !ok {
		return nil
	}
	return &account
}

// GetAdmin retrieves the current admin row from the request context.
// Returns nil when the request is anonymous or the account is not an admin.
func GetAdmin(r *http.Request) *store.Admin {
	admin, ok := r.Context().Value(ContextKeyAdmin).(store.Admin)
	if !ok {
		return nil
	}
	return &admin
}

// RequireAdmin creates middleware that restricts a route to admins.
// Anonymous requests are sent to the login page; signed-in non-admins
// are sent home.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetAccount(r) == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if GetAdmin(r) == nil {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
