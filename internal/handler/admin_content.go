// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/store"
)

const redirectContentTab = redirectAdmin + "?tab=content"

// UpdateContent saves a content section's title and body. The body is
// sanitized before storage and rendered as markdown on the public pages.
func (h *AdminHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectContentTab, "Content not found")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectContentTab) {
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectContentTab, "content", id,
		func(id int64) (store.Content, error) { return h.queries.GetContentByID(r.Context(), id) }); !ok {
		return
	}

	body := nullString(r.FormValue("body"))
	if body.Valid {
		body.String = h.ugc.Sanitize(body.String)
	}

	var updatedBy sql.NullInt64
	if admin := middleware.GetAdmin(r); admin != nil {
		updatedBy = sql.NullInt64{Int64: admin.ID, Valid: true}
	}

	if err := h.queries.UpdateContent(r.Context(), store.UpdateContentParams{
		Title:     nullString(r.FormValue("title")),
		Body:      body,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		slog.Error("failed to update content", "error", err, "content_id", id)
		flashError(w, r, h.renderer, redirectContentTab, "Error saving content")
		return
	}

	flashSuccess(w, r, h.renderer, redirectContentTab, "Content saved")
}
