// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/store"
)

const redirectEventsTab = redirectAdmin + "?tab=events"

// eventFormParams extracts and validates the shared event form fields.
func (h *AdminHandler) eventFormParams(r *http.Request) (title string, eventDate time.Time, endDate sql.NullTime, errMsg string) {
	title = strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		return "", time.Time{}, sql.NullTime{}, "Title is required"
	}

	eventDate, err := parseDateTimeLocal(r.FormValue("event_date"))
	if err != nil {
		return "", time.Time{}, sql.NullTime{}, "A valid event date is required"
	}

	endDate, err = parseOptionalDateTimeLocal(r.FormValue("event_end_date"))
	if err != nil {
		return "", time.Time{}, sql.NullTime{}, "End date is not a valid date"
	}

	return title, eventDate, endDate, ""
}

// CreateEvent handles the event creation form on the events tab.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectEventsTab) {
		return
	}

	title, eventDate, endDate, errMsg := h.eventFormParams(r)
	if errMsg != "" {
		flashError(w, r, h.renderer, redirectEventsTab, errMsg)
		return
	}

	var createdBy sql.NullInt64
	if admin := middleware.GetAdmin(r); admin != nil {
		createdBy = sql.NullInt64{Int64: admin.ID, Valid: true}
	}

	now := time.Now()
	event, err := h.queries.CreateEvent(r.Context(), store.CreateEventParams{
		Title:           title,
		Description:     nullString(r.FormValue("description")),
		EventDate:       eventDate,
		EventEndDate:    endDate,
		Location:        nullString(r.FormValue("location")),
		RegistrationUrl: nullString(r.FormValue("registration_url")),
		ImageUrl:        nullString(r.FormValue("image_url")),
		IsPublished:     r.FormValue("is_published") == "on",
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		slog.Error("failed to create event", "error", err)
		flashError(w, r, h.renderer, redirectEventsTab, "Error creating event")
		return
	}

	slog.Info("event created", "event_id", event.ID, "title", event.Title)
	flashSuccess(w, r, h.renderer, redirectEventsTab, "Event created")
}

// UpdateEvent handles the event edit form. The detail editor owns
// event_details and the image list, so they are left untouched here.
func (h *AdminHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, redirectEventsTab) {
		return
	}

	if _, ok := requireEntityWithRedirect(w, r, h.renderer, redirectEventsTab, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) }); !ok {
		return
	}

	title, eventDate, endDate, errMsg := h.eventFormParams(r)
	if errMsg != "" {
		flashError(w, r, h.renderer, redirectEventsTab, errMsg)
		return
	}

	if err := h.queries.UpdateEvent(r.Context(), store.UpdateEventParams{
		Title:           title,
		Description:     nullString(r.FormValue("description")),
		EventDate:       eventDate,
		EventEndDate:    endDate,
		Location:        nullString(r.FormValue("location")),
		RegistrationUrl: nullString(r.FormValue("registration_url")),
		ImageUrl:        nullString(r.FormValue("image_url")),
		IsPublished:     r.FormValue("is_published") == "on",
		UpdatedAt:       time.Now(),
		ID:              id,
	}); err != nil {
		slog.Error("failed to update event", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirectEventsTab, "Error updating event")
		return
	}

	flashSuccess(w, r, h.renderer, redirectEventsTab, "Event updated")
}

// DeleteEvent handles event deletion.
func (h *AdminHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), id); err != nil {
		slog.Error("failed to delete event", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirectEventsTab, "Error deleting event")
		return
	}

	flashSuccess(w, r, h.renderer, redirectEventsTab, "Event deleted")
}

// EventDetailEditor renders the per-event detail editor: long-form
// description and the ordered gallery image URL list.
func (h *AdminHandler) EventDetailEditor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectEventsTab, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	data := struct {
		Event         store.Event
		GalleryImages []string
	}{
		Event:         event,
		GalleryImages: model.GalleryImages(event),
	}

	if err := h.renderer.Render(w, r, "admin/event_detail", pageData(r, "Edit "+event.Title, data)); err != nil {
		logAndInternalError(w, "failed to render event detail editor", "error", err)
	}
}

// UpdateEventDetails saves the long-form details from the detail editor.
func (h *AdminHandler) UpdateEventDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}
	redirect := fmt.Sprintf(redirectAdminEventsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, redirect) {
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectEventsTab, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.queries.UpdateEventDetails(r.Context(), store.UpdateEventDetailsParams{
		EventDetails:  nullString(r.FormValue("event_details")),
		GalleryImages: event.GalleryImages,
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		slog.Error("failed to update event details", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirect, "Error saving details")
		return
	}

	flashSuccess(w, r, h.renderer, redirect, "Details saved")
}

// AddEventImage appends an image URL to the event's gallery list.
// Duplicate URLs are rejected.
func (h *AdminHandler) AddEventImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}
	redirect := fmt.Sprintf(redirectAdminEventsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, redirect) {
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectEventsTab, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	url := strings.TrimSpace(r.FormValue("image_url"))
	if url == "" {
		flashError(w, r, h.renderer, redirect, "Image URL is required")
		return
	}

	urls := model.GalleryImages(event)
	for _, existing := range urls {
		if existing == url {
			flashError(w, r, h.renderer, redirect, "This image is already in the gallery")
			return
		}
	}
	urls = append(urls, url)

	if err := h.queries.UpdateEventDetails(r.Context(), store.UpdateEventDetailsParams{
		EventDetails:  event.EventDetails,
		GalleryImages: model.EncodeGalleryImages(urls),
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		slog.Error("failed to add event image", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirect, "Error adding image")
		return
	}

	flashSuccess(w, r, h.renderer, redirect, "Image added")
}

// RemoveEventImage removes an image from the event's gallery list by position.
func (h *AdminHandler) RemoveEventImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		flashError(w, r, h.renderer, redirectEventsTab, "Event not found")
		return
	}
	redirect := fmt.Sprintf(redirectAdminEventsID, id)
	if !parseFormOrRedirect(w, r, h.renderer, redirect) {
		return
	}

	event, ok := requireEntityWithRedirect(w, r, h.renderer, redirectEventsTab, "event", id,
		func(id int64) (store.Event, error) { return h.queries.GetEventByID(r.Context(), id) })
	if !ok {
		return
	}

	urls := model.GalleryImages(event)
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil || index < 0 || index >= len(urls) {
		flashError(w, r, h.renderer, redirect, "Image not found")
		return
	}
	urls = append(urls[:index], urls[index+1:]...)

	if err := h.queries.UpdateEventDetails(r.Context(), store.UpdateEventDetailsParams{
		EventDetails:  event.EventDetails,
		GalleryImages: model.EncodeGalleryImages(urls),
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		slog.Error("failed to remove event image", "error", err, "event_id", id)
		flashError(w, r, h.renderer, redirect, "Error removing image")
		return
	}

	flashSuccess(w, r, h.renderer, redirect, "Image removed")
}
