// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site, the
// auth flow and the admin dashboard.
package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/voidlabs/crossstack/internal/middleware"
	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
)

// homeUpcomingLimit is the number of upcoming events shown on the homepage.
const homeUpcomingLimit = 3

// FrontendHandler serves the public pages.
type FrontendHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	events         *service.EventService
	gallery        *service.GalleryService
	bioPolicy      *bluemonday.Policy
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager) *FrontendHandler {
	return &FrontendHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		events:         service.NewEventService(db),
		gallery:        service.NewGalleryService(db),
		bioPolicy:      bluemonday.StrictPolicy(),
	}
}

// pageData fills the shared layout fields from the request context.
func pageData(r *http.Request, title string, data any) render.TemplateData {
	return render.TemplateData{
		Title:    title,
		Data:     data,
		SignedIn: middleware.GetAccount(r) != nil,
		IsAdmin:  middleware.GetAdmin(r) != nil,
	}
}

// sectionContent loads a content row, returning a zero value when the
// row is missing so templates can fall back to their defaults.
func (h *FrontendHandler) sectionContent(r *http.Request, page, section string) store.Content {
	content, err := h.queries.GetContentBySection(r.Context(), store.GetContentBySectionParams{
		Page:    page,
		Section: section,
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to load content", "error", err, "page", page, "section", section)
		}
		return store.Content{Page: page, Section: section}
	}
	return content
}

// Home renders the homepage: hero copy, the next few events and the
// album preview strip.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	upcoming, err := h.events.UpcomingLimit(r.Context(), time.Now(), homeUpcomingLimit)
	if err != nil {
		logAndInternalError(w, "failed to load upcoming events", "error", err)
		return
	}

	preview, err := h.gallery.Preview(r.Context())
	if err != nil {
		slog.Error("failed to load album preview", "error", err)
		preview = nil
	}

	data := struct {
		Hero     store.Content
		Upcoming []store.Event
		Preview  []service.PreviewImage
	}{
		Hero:     h.sectionContent(r, "home", "hero"),
		Upcoming: upcoming,
		Preview:  preview,
	}

	if err := h.renderer.Render(w, r, "pages/home", pageData(r, "Home", data)); err != nil {
		logAndInternalError(w, "failed to render homepage", "error", err)
	}
}

// Events renders the events listing split into upcoming and past.
func (h *FrontendHandler) Events(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	upcoming, err := h.events.Upcoming(r.Context(), now)
	if err != nil {
		logAndInternalError(w, "failed to load upcoming events", "error", err)
		return
	}

	past, err := h.events.Past(r.Context(), now)
	if err != nil {
		logAndInternalError(w, "failed to load past events", "error", err)
		return
	}

	data := struct {
		Upcoming []store.Event
		Past     []store.Event
	}{
		Upcoming: upcoming,
		Past:     past,
	}

	if err := h.renderer.Render(w, r, "pages/events", pageData(r, "Events", data)); err != nil {
		logAndInternalError(w, "failed to render events page", "error", err)
	}
}

// EventDetail renders a single event page.
func (h *FrontendHandler) EventDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.NotFound(w, r)
		return
	}

	event, err := h.queries.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.NotFound(w, r)
			return
		}
		logAndInternalError(w, "failed to load event", "error", err, "event_id", id)
		return
	}

	data := struct {
		Event         store.Event
		IsPast        bool
		GalleryImages []string
	}{
		Event:         event,
		IsPast:        model.IsPast(event, time.Now()),
		GalleryImages: model.GalleryImages(event),
	}

	if err := h.renderer.Render(w, r, "pages/event_detail", pageData(r, event.Title, data)); err != nil {
		logAndInternalError(w, "failed to render event page", "error", err)
	}
}

// About renders the about page with community stats.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	memberCount, err := h.queries.CountApprovedMembers(r.Context())
	if err != nil {
		slog.Error("failed to count members", "error", err)
	}
	eventCount, err := h.queries.CountPublishedEvents(r.Context())
	if err != nil {
		slog.Error("failed to count events", "error", err)
	}

	data := struct {
		Story       store.Content
		Values      store.Content
		MemberCount int64
		EventCount  int64
	}{
		Story:       h.sectionContent(r, "about", "story"),
		Values:      h.sectionContent(r, "about", "values"),
		MemberCount: memberCount,
		EventCount:  eventCount,
	}

	if err := h.renderer.Render(w, r, "pages/about", pageData(r, "About", data)); err != nil {
		logAndInternalError(w, "failed to render about page", "error", err)
	}
}

// Album renders the photo album: published gallery events with images.
func (h *FrontendHandler) Album(w http.ResponseWriter, r *http.Request) {
	albums, err := h.gallery.Albums(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to load albums", "error", err)
		return
	}

	data := struct {
		Albums []service.Album
	}{Albums: albums}

	if err := h.renderer.Render(w, r, "pages/album", pageData(r, "Album", data)); err != nil {
		logAndInternalError(w, "failed to render album page", "error", err)
	}
}

// JoinForm renders the membership sign-up form.
func (h *FrontendHandler) JoinForm(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, r, "pages/join", pageData(r, "Join", nil)); err != nil {
		logAndInternalError(w, "failed to render join page", "error", err)
	}
}

// JoinSubmit handles the membership sign-up form submission. Membership
// starts unapproved; an admin approves it from the dashboard.
func (h *FrontendHandler) JoinSubmit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectJoin) {
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := model.NormalizeEmail(r.FormValue("email"))
	if name == "" || email == "" {
		flashError(w, r, h.renderer, redirectJoin, "Name and email are required")
		return
	}

	const dupMsg = "This email is already registered as a member."

	if _, err := h.queries.GetMemberByEmail(r.Context(), email); err == nil {
		flashError(w, r, h.renderer, redirectJoin, dupMsg)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check member email", "error", err)
		flashError(w, r, h.renderer, redirectJoin, "Something went wrong. Please try again.")
		return
	}

	bio := nullString(r.FormValue("bio"))
	if bio.Valid {
		bio.String = h.bioPolicy.Sanitize(bio.String)
	}

	now := time.Now()
	member, err := h.queries.CreateMember(r.Context(), store.CreateMemberParams{
		Email:       email,
		Name:        sql.NullString{String: name, Valid: true},
		Bio:         bio,
		GithubUrl:   nullString(r.FormValue("github_url")),
		LinkedinUrl: nullString(r.FormValue("linkedin_url")),
		TwitterUrl:  nullString(r.FormValue("twitter_url")),
		IsApproved:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		// The pre-check races with concurrent submissions; the UNIQUE
		// index is the real guard.
		if isUniqueViolation(err) {
			flashError(w, r, h.renderer, redirectJoin, dupMsg)
			return
		}
		slog.Error("failed to create member", "error", err)
		flashError(w, r, h.renderer, redirectJoin, "Something went wrong. Please try again.")
		return
	}

	slog.Info("member signed up", "member_id", member.ID, "email", member.Email)
	flashSuccess(w, r, h.renderer, redirectJoin, "Thanks for joining! We'll review your application soon.")
}

// NotFound renders the 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.renderer.Render(w, r, "pages/404", pageData(r, "Page Not Found", nil)); err != nil {
		slog.Error("failed to render 404 page", "error", err)
	}
}
