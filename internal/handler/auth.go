// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"

	"github.com/voidlabs/crossstack/internal/auth"
	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
)

// MinPasswordLength is the minimum accepted password length at sign-up.
const MinPasswordLength = 8

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries         *store.Queries
	renderer        *render.Renderer
	sessionManager  *scs.SessionManager
	admins          *service.AdminService
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, admins *service.AdminService, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		renderer:        renderer,
		sessionManager:  sm,
		admins:          admins,
		loginProtection: lp,
	}
}

// LoginForm renders the login page. Already-authenticated admins go to
// the dashboard, other signed-in users go home.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAccount(r) != nil {
		if middleware.GetAdmin(r) != nil {
			http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
		return
	}

	if err := h.renderer.Render(w, r, "auth/login", pageData(r, "Sign In", nil)); err != nil {
		logAndInternalError(w, "failed to render login page", "error", err)
	}
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectLogin) {
		return
	}

	email := model.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, redirectLogin, "Email and password are required")
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Account temporarily locked. Try again in %s.", formatDuration(remaining)))
			return
		}
	}

	account, err := h.queries.GetAccountByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for non-existent account", "email", email)
		} else {
			slog.Error("database error during login", "error", err)
		}
		// Record the failure even for unknown emails to prevent enumeration
		h.recordFailure(w, r, email)
		return
	}

	valid, err := auth.CheckPassword(password, account.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err)
		flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
		return
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		h.recordFailure(w, r, email)
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Re-hash if the stored hash uses outdated parameters
	if auth.NeedsRehash(account.PasswordHash) {
		if newHash, err := auth.HashPassword(password); err == nil {
			if err := h.queries.UpdateAccountPassword(r.Context(), store.UpdateAccountPasswordParams{
				PasswordHash: newHash,
				UpdatedAt:    time.Now(),
				ID:           account.ID,
			}); err != nil {
				slog.Error("failed to re-hash password", "error", err, "account_id", account.ID)
			}
		}
	}

	if err := h.queries.UpdateAccountLastLogin(r.Context(), store.UpdateAccountLastLoginParams{
		LastLoginAt: sql.NullTime{Time: time.Now(), Valid: true},
		UpdatedAt:   time.Now(),
		ID:          account.ID,
	}); err != nil {
		// Don't block login on this error
		slog.Error("failed to update last login time", "error", err, "account_id", account.ID)
	}

	// Regenerate session ID to prevent session fixation
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		logAndInternalError(w, "session renewal error", "error", err)
		return
	}

	h.sessionManager.Put(r.Context(), middleware.SessionKeyAccountID, account.ID)

	// First login runs designated-admin bootstrap and invited-row
	// reconciliation; the result decides the landing page.
	_, isAdmin, err := h.admins.Resolve(r.Context(), account)
	if err != nil {
		slog.Error("failed to resolve admin on login", "error", err, "account_id", account.ID)
	}

	slog.Info("account logged in", "account_id", account.ID, "email", account.Email, "admin", isAdmin)

	h.renderer.SetFlash(r, "Welcome back!", "success")
	if isAdmin {
		http.Redirect(w, r, redirectAdmin, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, RouteRoot, http.StatusSeeOther)
}

// recordFailure records a failed login attempt and redirects with the
// appropriate message.
func (h *AuthHandler) recordFailure(w http.ResponseWriter, r *http.Request, email string) {
	if h.loginProtection != nil {
		if locked, lockDuration := h.loginProtection.RecordFailedAttempt(email); locked {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Too many failed attempts. Account locked for %s.", formatDuration(lockDuration)))
			return
		}
		remaining := h.loginProtection.GetRemainingAttempts(email)
		if remaining <= 3 && remaining > 0 {
			flashError(w, r, h.renderer, redirectLogin,
				fmt.Sprintf("Invalid email or password. %d attempts remaining.", remaining))
			return
		}
	}
	flashError(w, r, h.renderer, redirectLogin, "Invalid email or password")
}

// SignupForm renders the account sign-up page.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "auth/signup", pageData(r, "Create Account", nil)); err != nil {
		logAndInternalError(w, "failed to render signup page", "error", err)
	}
}

// Signup handles the account sign-up form. Accounts exist to back the
// admin area, so sign-up is limited to designated or invited admin
// emails; everyone else joins through the membership form.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteSignup) {
		return
	}

	email := model.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteSignup, "Email and password are required")
		return
	}
	if len(password) < MinPasswordLength {
		flashError(w, r, h.renderer, RouteSignup,
			fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
		return
	}

	invited := false
	if _, err := h.queries.GetAdminByEmail(r.Context(), email); err == nil {
		invited = true
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check admin invite", "error", err)
		flashError(w, r, h.renderer, RouteSignup, "Something went wrong. Please try again.")
		return
	}

	if !h.admins.IsDesignated(email) && !invited {
		flashError(w, r, h.renderer, RouteSignup, "Sign-up is limited to invited admins. Use the join page to become a member.")
		return
	}

	if _, err := h.queries.GetAccountByEmail(r.Context(), email); err == nil {
		flashError(w, r, h.renderer, RouteSignup, "An account with this email already exists. Please sign in.")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check existing account", "error", err)
		flashError(w, r, h.renderer, RouteSignup, "Something went wrong. Please try again.")
		return
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		flashError(w, r, h.renderer, RouteSignup, "Something went wrong. Please try again.")
		return
	}

	now := time.Now()
	account, err := h.queries.CreateAccount(r.Context(), store.CreateAccountParams{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if isUniqueViolation(err) {
			flashError(w, r, h.renderer, RouteSignup, "An account with this email already exists. Please sign in.")
			return
		}
		slog.Error("failed to create account", "error", err)
		flashError(w, r, h.renderer, RouteSignup, "Something went wrong. Please try again.")
		return
	}

	slog.Info("account created", "account_id", account.ID, "email", account.Email)
	http.Redirect(w, r, RouteSignUpSuccess, http.StatusSeeOther)
}

// SignUpSuccess renders the post-signup notice page.
func (h *AuthHandler) SignUpSuccess(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "auth/sign_up_success", pageData(r, "Account Created", nil)); err != nil {
		logAndInternalError(w, "failed to render signup success page", "error", err)
	}
}

// Logout handles logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	accountID := h.sessionManager.GetString(r.Context(), middleware.SessionKeyAccountID)

	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("account logged out", "account_id", accountID)
	flashAndRedirect(w, r, h.renderer, RouteRoot, "You have been signed out.", "info")
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", mins)
	}
	hours := int(d.Hours())
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
