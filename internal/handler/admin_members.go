// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/voidlabs/crossstack/internal/store"
)

const redirectMembersTab = redirectAdmin + "?tab=members"

// ToggleMemberApproval flips a member's approval flag.
func (h *AdminHandler) ToggleMemberApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectMembersTab, "Member not found")
		return
	}

	member, ok := requireEntityWithRedirect(w, r, h.renderer, redirectMembersTab, "member", id,
		func(id int64) (store.Member, error) { return h.queries.GetMemberByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.SetMemberApproval(r.Context(), store.SetMemberApprovalParams{
		IsApproved: !member.IsApproved,
		UpdatedAt:  time.Now(),
		ID:         id,
	}); err != nil {
		slog.Error("failed to toggle member approval", "error", err, "member_id", id)
		flashError(w, r, h.renderer, redirectMembersTab, "Error updating member")
		return
	}

	if member.IsApproved {
		flashSuccess(w, r, h.renderer, redirectMembersTab, "Member unapproved")
	} else {
		flashSuccess(w, r, h.renderer, redirectMembersTab, "Member approved")
	}
}

// DeleteMember removes a member.
func (h *AdminHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectMembersTab, "Member not found")
		return
	}

	if err := h.queries.DeleteMember(r.Context(), id); err != nil {
		slog.Error("failed to delete member", "error", err, "member_id", id)
		flashError(w, r, h.renderer, redirectMembersTab, "Error deleting member")
		return
	}

	flashSuccess(w, r, h.renderer, redirectMembersTab, "Member deleted")
}
