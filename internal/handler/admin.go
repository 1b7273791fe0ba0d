// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
)

// DashboardStats are the stat cards at the top of the admin dashboard.
type DashboardStats struct {
	TotalEvents    int64
	UpcomingEvents int64
	Members        int64
	Admins         int64
	Photos         int64
}

// galleryEventView is a gallery event with its images for the gallery tab.
type galleryEventView struct {
	Event  store.GalleryEvent
	Images []store.GalleryImage
}

// AdminHandler serves the admin dashboard and its management tabs.
type AdminHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
	admins   *service.AdminService
	gallery  *service.GalleryService
	ugc      *bluemonday.Policy
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, renderer *render.Renderer, admins *service.AdminService) *AdminHandler {
	return &AdminHandler{
		queries:  store.New(db),
		renderer: renderer,
		admins:   admins,
		gallery:  service.NewGalleryService(db),
		ugc:      bluemonday.UGCPolicy(),
	}
}

// validTabs are the dashboard tab names.
var validTabs = map[string]bool{
	"events":  true,
	"gallery": true,
	"members": true,
	"admins":  true,
	"content": true,
}

// Dashboard renders the admin dashboard with stat cards and the active
// management tab.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tab := r.URL.Query().Get("tab")
	if !validTabs[tab] {
		tab = "events"
	}

	events, err := h.queries.ListEvents(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list events", "error", err)
		return
	}

	upcoming, err := h.queries.ListUpcomingPublishedEvents(ctx, time.Now())
	if err != nil {
		logAndInternalError(w, "failed to list upcoming events", "error", err)
		return
	}

	members, err := h.queries.ListMembers(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list members", "error", err)
		return
	}

	admins, err := h.queries.ListAdmins(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list admins", "error", err)
		return
	}

	content, err := h.queries.ListContent(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list content", "error", err)
		return
	}

	photos, err := h.queries.CountAllGalleryImages(ctx)
	if err != nil {
		logAndInternalError(w, "failed to count gallery images", "error", err)
		return
	}

	galleryEvents, err := h.queries.ListGalleryEvents(ctx)
	if err != nil {
		logAndInternalError(w, "failed to list gallery events", "error", err)
		return
	}

	galleryViews := make([]galleryEventView, 0, len(galleryEvents))
	for _, ev := range galleryEvents {
		images, err := h.queries.ListGalleryImages(ctx, ev.ID)
		if err != nil {
			slog.Error("failed to list gallery images", "error", err, "gallery_event_id", ev.ID)
			images = nil
		}
		galleryViews = append(galleryViews, galleryEventView{Event: ev, Images: images})
	}

	data := struct {
		ActiveTab     string
		Stats         DashboardStats
		Events        []store.Event
		GalleryEvents []galleryEventView
		Members       []store.Member
		Admins        []store.Admin
		Content       []store.Content
	}{
		ActiveTab: tab,
		Stats: DashboardStats{
			TotalEvents:    int64(len(events)),
			UpcomingEvents: int64(len(upcoming)),
			Members:        int64(len(members)),
			Admins:         int64(len(admins)),
			Photos:         photos,
		},
		Events:        events,
		GalleryEvents: galleryViews,
		Members:       members,
		Admins:        admins,
		Content:       content,
	}

	if err := h.renderer.Render(w, r, "admin/dashboard", pageData(r, "Dashboard", data)); err != nil {
		logAndInternalError(w, "failed to render dashboard", "error", err)
	}
}
