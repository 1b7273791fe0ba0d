// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/store"
)

const redirectGalleryTab = redirectAdmin + "?tab=gallery"

// CreateGalleryEvent handles the gallery event creation form.
func (h *AdminHandler) CreateGalleryEvent(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectGalleryTab) {
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		flashError(w, r, h.renderer, redirectGalleryTab, "Title is required")
		return
	}

	eventDate, err := parseOptionalDateTimeLocal(r.FormValue("event_date"))
	if err != nil {
		flashError(w, r, h.renderer, redirectGalleryTab, "Event date is not a valid date")
		return
	}

	var createdBy sql.NullInt64
	if admin := middleware.GetAdmin(r); admin != nil {
		createdBy = sql.NullInt64{Int64: admin.ID, Valid: true}
	}

	ev, err := h.gallery.CreateEvent(r.Context(), store.CreateGalleryEventParams{
		Title:         title,
		Description:   nullString(r.FormValue("description")),
		EventDate:     eventDate,
		CoverImageUrl: nullString(r.FormValue("cover_image_url")),
		IsPublished:   r.FormValue("is_published") == "on",
		CreatedBy:     createdBy,
	})
	if err != nil {
		slog.Error("failed to create gallery event", "error", err)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error creating gallery event")
		return
	}

	slog.Info("gallery event created", "gallery_event_id", ev.ID, "title", ev.Title)
	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Gallery event created")
}

// UpdateGalleryEvent handles the gallery event edit form.
func (h *AdminHandler) UpdateGalleryEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectGalleryTab, "Gallery event not found")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectGalleryTab) {
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectGalleryTab, "gallery event", id,
		func(id int64) (store.GalleryEvent, error) { return h.queries.GetGalleryEventByID(r.Context(), id) }); !ok {
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		flashError(w, r, h.renderer, redirectGalleryTab, "Title is required")
		return
	}

	eventDate, err := parseOptionalDateTimeLocal(r.FormValue("event_date"))
	if err != nil {
		flashError(w, r, h.renderer, redirectGalleryTab, "Event date is not a valid date")
		return
	}

	if err := h.queries.UpdateGalleryEvent(r.Context(), store.UpdateGalleryEventParams{
		Title:         title,
		Description:   nullString(r.FormValue("description")),
		EventDate:     eventDate,
		CoverImageUrl: nullString(r.FormValue("cover_image_url")),
		IsPublished:   r.FormValue("is_published") == "on",
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		slog.Error("failed to update gallery event", "error", err, "gallery_event_id", id)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error updating gallery event")
		return
	}

	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Gallery event updated")
}

// DeleteGalleryEvent deletes a gallery event. Its images go with it.
func (h *AdminHandler) DeleteGalleryEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectGalleryTab, "Gallery event not found")
		return
	}

	if err := h.queries.DeleteGalleryEvent(r.Context(), id); err != nil {
		slog.Error("failed to delete gallery event", "error", err, "gallery_event_id", id)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error deleting gallery event")
		return
	}

	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Gallery event deleted")
}

// AddGalleryImage handles the add-image form inside a gallery event.
func (h *AdminHandler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectGalleryTab, "Gallery event not found")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectGalleryTab) {
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectGalleryTab, "gallery event", id,
		func(id int64) (store.GalleryEvent, error) { return h.queries.GetGalleryEventByID(r.Context(), id) }); !ok {
		return
	}

	imageURL := strings.TrimSpace(r.FormValue("image_url"))
	if imageURL == "" {
		flashError(w, r, h.renderer, redirectGalleryTab, "Image URL is required")
		return
	}

	var createdBy sql.NullInt64
	if admin := middleware.GetAdmin(r); admin != nil {
		createdBy = sql.NullInt64{Int64: admin.ID, Valid: true}
	}

	img, err := h.gallery.AddImage(r.Context(), store.CreateGalleryImageParams{
		GalleryEventID: id,
		ImageUrl:       imageURL,
		Caption:        nullString(r.FormValue("caption")),
		Description:    nullString(r.FormValue("description")),
		IsFeatured:     r.FormValue("is_featured") == "on",
		CreatedBy:      createdBy,
	})
	if err != nil {
		slog.Error("failed to add gallery image", "error", err, "gallery_event_id", id)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error adding image")
		return
	}

	slog.Info("gallery image added", "gallery_image_id", img.ID, "gallery_event_id", id)
	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Image added")
}

// ToggleGalleryImageFeatured flips an image's featured flag.
func (h *AdminHandler) ToggleGalleryImageFeatured(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectGalleryTab, "Image not found")
		return
	}

	img, ok := requireEntityWithRedirect(w, r, h.renderer, redirectGalleryTab, "image", id,
		func(id int64) (store.GalleryImage, error) { return h.queries.GetGalleryImageByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.UpdateGalleryImage(r.Context(), store.UpdateGalleryImageParams{
		ImageUrl:    img.ImageUrl,
		Caption:     img.Caption,
		Description: img.Description,
		IsFeatured:  !img.IsFeatured,
		UpdatedAt:   time.Now(),
		ID:          id,
	}); err != nil {
		slog.Error("failed to toggle featured image", "error", err, "gallery_image_id", id)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error updating image")
		return
	}

	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Image updated")
}

// DeleteGalleryImage deletes a single gallery image.
func (h *AdminHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectGalleryTab, "Image not found")
		return
	}

	if err := h.queries.DeleteGalleryImage(r.Context(), id); err != nil {
		slog.Error("failed to delete gallery image", "error", err, "gallery_image_id", id)
		flashError(w, r, h.renderer, redirectGalleryTab, "Error deleting image")
		return
	}

	flashSuccess(w, r, h.renderer, redirectGalleryTab, "Image deleted")
}
