// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/store"
)

// adminRouter mounts the admin handler the way the server does, minus
// the auth middleware.
func adminRouter(env *testEnv) (*AdminHandler, chi.Router) {
	h := NewAdminHandler(env.db, env.renderer, env.admins)

	r := chi.NewRouter()
	r.Use(env.sessions.LoadAndSave)
	r.Get("/admin", h.Dashboard)
	r.Route("/admin/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/{id}", h.EventDetailEditor)
		r.Post("/{id}/details", h.UpdateEventDetails)
		r.Post("/{id}/images", h.AddEventImage)
		r.Post("/{id}/images/remove", h.RemoveEventImage)
	})
	r.Post("/admin/members/{id}/approve", h.ToggleMemberApproval)
	return h, r
}

func postRouted(t *testing.T, r chi.Router, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminCreateEvent(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	w := postRouted(t, r, "/admin/events", url.Values{
		"title":        {"Go Workshop"},
		"event_date":   {"2026-10-01T18:00"},
		"location":     {"Hyderabad"},
		"is_published": {"on"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin?tab=events", w.Header().Get("Location"))

	events, err := env.queries.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Go Workshop", events[0].Title)
	assert.True(t, events[0].IsPublished)
	assert.True(t, events[0].EventDate.Equal(time.Date(2026, 10, 1, 18, 0, 0, 0, time.Local)))
}

func TestAdminCreateEvent_InvalidDate(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	w := postRouted(t, r, "/admin/events", url.Values{
		"title":      {"Broken"},
		"event_date": {"next tuesday"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	events, err := env.queries.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAdminEventImages(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	now := time.Now().UTC()
	event, err := env.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Title:       "Demo Day",
		EventDate:   now.Add(24 * time.Hour),
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	base := "/admin/events/" + strconv.FormatInt(event.ID, 10)

	w := postRouted(t, r, base+"/images", url.Values{"image_url": {"https://cdn.example.com/a.jpg"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, base, w.Header().Get("Location"))

	postRouted(t, r, base+"/images", url.Values{"image_url": {"https://cdn.example.com/b.jpg"}})

	// Duplicate URLs are rejected
	postRouted(t, r, base+"/images", url.Values{"image_url": {"https://cdn.example.com/a.jpg"}})

	got, err := env.queries.GetEventByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, model.GalleryImages(got))

	// Removing by position keeps the remaining order
	postRouted(t, r, base+"/images/remove", url.Values{"index": {"0"}})

	got, err = env.queries.GetEventByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/b.jpg"}, model.GalleryImages(got))
}

func TestAdminUpdateEventDetails_PreservesImages(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	now := time.Now().UTC()
	event, err := env.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Title:     "Conf",
		EventDate: now.Add(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	base := "/admin/events/" + strconv.FormatInt(event.ID, 10)
	postRouted(t, r, base+"/images", url.Values{"image_url": {"https://cdn.example.com/keep.jpg"}})
	postRouted(t, r, base+"/details", url.Values{"event_details": {"## Schedule"}})

	got, err := env.queries.GetEventByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "## Schedule", got.EventDetails.String)
	assert.Equal(t, []string{"https://cdn.example.com/keep.jpg"}, model.GalleryImages(got))
}

func TestAdminToggleMemberApproval(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	now := time.Now().UTC()
	member, err := env.queries.CreateMember(context.Background(), store.CreateMemberParams{
		Email:     "pending@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.False(t, member.IsApproved)

	path := "/admin/members/" + strconv.FormatInt(member.ID, 10) + "/approve"

	w := postRouted(t, r, path, url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	got, err := env.queries.GetMemberByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)

	// Toggling again revokes the approval
	postRouted(t, r, path, url.Values{})
	got, err = env.queries.GetMemberByID(context.Background(), member.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)
}

func TestAdminDashboard_Renders(t *testing.T) {
	env := newTestEnv(t)
	_, r := adminRouter(env)

	now := time.Now().UTC()
	_, err := env.queries.CreateMember(context.Background(), store.CreateMemberParams{
		Email:     "listed@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin?tab=members", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "listed@example.com")
	assert.Contains(t, w.Body.String(), "Pending")
}
