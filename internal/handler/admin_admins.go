// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/service"
)

const redirectAdminsTab = redirectAdmin + "?tab=admins"

// InviteAdmin handles the invite-by-email form on the admins tab. The
// invitee gets a placeholder admin row that is bound to their account
// when they first log in.
func (h *AdminHandler) InviteAdmin(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectAdminsTab) {
		return
	}

	email := model.NormalizeEmail(r.FormValue("email"))
	if email == "" {
		flashError(w, r, h.renderer, redirectAdminsTab, "Email is required")
		return
	}

	actor := middleware.GetAdmin(r)
	if actor == nil {
		http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
		return
	}

	admin, err := h.admins.Invite(r.Context(), email, actor.ID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyAdmin) {
			flashError(w, r, h.renderer, redirectAdminsTab, "This email is already an admin.")
			return
		}
		slog.Error("failed to invite admin", "error", err, "email", email)
		flashError(w, r, h.renderer, redirectAdminsTab, "Error inviting admin")
		return
	}

	slog.Info("admin invited", "admin_id", admin.ID, "email", admin.Email, "invited_by", actor.ID)
	flashSuccess(w, r, h.renderer, redirectAdminsTab, "Admin invited")
}

// DeleteAdmin removes an admin row, enforcing the self-delete and
// super-admin rules.
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectAdminsTab, "Admin not found")
		return
	}

	actor := middleware.GetAdmin(r)
	if actor == nil {
		http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
		return
	}

	if err := h.admins.Delete(r.Context(), id, actor.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfDelete):
			flashError(w, r, h.renderer, redirectAdminsTab, "You cannot delete your own admin account.")
		case errors.Is(err, service.ErrSuperAdminDelete):
			flashError(w, r, h.renderer, redirectAdminsTab, "Super admins cannot be deleted.")
		default:
			slog.Error("failed to delete admin", "error", err, "admin_id", id)
			flashError(w, r, h.renderer, redirectAdminsTab, "Error deleting admin")
		}
		return
	}

	slog.Info("admin deleted", "admin_id", id, "deleted_by", actor.ID)
	flashSuccess(w, r, h.renderer, redirectAdminsTab, "Admin removed")
}
