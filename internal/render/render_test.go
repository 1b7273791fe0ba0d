// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package render_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
	"github.com/voidlabs/crossstack/web"
)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	r, err := render.New(render.Config{
		TemplatesFS: web.Templates,
		SiteName:    "CrossStack",
	})
	require.NoError(t, err)
	return r
}

func TestRender_Home(t *testing.T) {
	r := testRenderer(t)

	data := struct {
		Hero     store.Content
		Upcoming []store.Event
		Preview  []service.PreviewImage
	}{
		Hero: store.Content{
			Page:    "home",
			Section: "hero",
			Title:   sql.NullString{String: "Building a Community of Builders", Valid: true},
			Body:    sql.NullString{String: "Learn, ship, grow.", Valid: true},
		},
		Upcoming: []store.Event{{
			ID:        1,
			Title:     "Go Workshop",
			EventDate: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		}},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := r.Render(w, req, "pages/home", render.TemplateData{Title: "Home", Data: data})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "Building a Community of Builders")
	assert.Contains(t, body, "Go Workshop")
	assert.Contains(t, body, "Oct 1, 2026 6:00 PM")
	assert.Contains(t, body, "Home - CrossStack")
}

func TestRender_MarkdownFunc(t *testing.T) {
	r := testRenderer(t)

	data := struct {
		Hero     store.Content
		Upcoming []store.Event
		Preview  []service.PreviewImage
	}{
		Hero: store.Content{
			Body: sql.NullString{String: "**bold** copy", Valid: true},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := r.Render(w, req, "pages/home", render.TemplateData{Data: data})
	require.NoError(t, err)

	assert.Contains(t, w.Body.String(), "<strong>bold</strong>")
}

func TestRender_AdminDashboard(t *testing.T) {
	r := testRenderer(t)

	data := struct {
		ActiveTab     string
		Stats         struct{ TotalEvents, UpcomingEvents, Members, Admins, Photos int64 }
		Events        []store.Event
		GalleryEvents []struct {
			Event  store.GalleryEvent
			Images []store.GalleryImage
		}
		Members []store.Member
		Admins  []store.Admin
		Content []store.Content
	}{
		ActiveTab: "events",
		Events: []store.Event{{
			ID:          4,
			Title:       "Launch Party",
			EventDate:   time.Date(2026, 11, 5, 19, 0, 0, 0, time.UTC),
			IsPublished: true,
		}},
	}
	data.Stats.TotalEvents = 1

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	err := r.Render(w, req, "admin/dashboard", render.TemplateData{Title: "Dashboard", Data: data, IsAdmin: true})
	require.NoError(t, err)

	body := w.Body.String()
	assert.Contains(t, body, "Launch Party")
	assert.Contains(t, body, "/admin/events/4")
	assert.Contains(t, body, "Published")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := testRenderer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	err := r.Render(w, req, "pages/nope", render.TemplateData{})
	assert.Error(t, err)
}
