// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/crossstack/internal/render"
	"github.com/voidlabs/crossstack/internal/service"
	"github.com/voidlabs/crossstack/internal/store"
	"github.com/voidlabs/crossstack/internal/testutil"
	"github.com/voidlabs/crossstack/web"
)

type testEnv struct {
	db       *sql.DB
	queries  *store.Queries
	sessions *scs.SessionManager
	renderer *render.Renderer
	admins   *service.AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	sm := scs.New()

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates,
		SessionManager: sm,
		SiteName:       "CrossStack",
		IsDev:          true,
	})
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		queries:  store.New(db),
		sessions: sm,
		renderer: renderer,
		admins:   service.NewAdminService(db, []string{"boss@example.com"}),
	}
}

// postForm runs a form submission through the session middleware.
func postForm(t *testing.T, sm *scs.SessionManager, h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	sm.LoadAndSave(h).ServeHTTP(w, req)
	return w
}

func TestJoinSubmit_CreatesPendingMember(t *testing.T) {
	env := newTestEnv(t)
	h := NewFrontendHandler(env.db, env.renderer, env.sessions)

	w := postForm(t, env.sessions, h.JoinSubmit, "/join", url.Values{
		"name":       {"Ada"},
		"email":      {" Ada@Example.COM "},
		"bio":        {"Compilers and <script>alert(1)</script> community."},
		"github_url": {"https://github.com/ada"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/join", w.Header().Get("Location"))

	member, err := env.queries.GetMemberByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", member.Name.String)
	assert.False(t, member.IsApproved)
	assert.NotContains(t, member.Bio.String, "<script>")
	assert.Equal(t, "https://github.com/ada", member.GithubUrl.String)
}

func TestJoinSubmit_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	h := NewFrontendHandler(env.db, env.renderer, env.sessions)

	first := postForm(t, env.sessions, h.JoinSubmit, "/join", url.Values{
		"name":  {"Ada"},
		"email": {"ada@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, first.Code)

	second := postForm(t, env.sessions, h.JoinSubmit, "/join", url.Values{
		"name":  {"Impostor"},
		"email": {"Ada@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/join", second.Header().Get("Location"))

	members, err := env.queries.ListMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada", members[0].Name.String)
}

func TestJoinSubmit_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	h := NewFrontendHandler(env.db, env.renderer, env.sessions)

	w := postForm(t, env.sessions, h.JoinSubmit, "/join", url.Values{
		"email": {"no-name@example.com"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	members, err := env.queries.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestSignup_RestrictedToInvited(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.db, env.renderer, env.sessions, env.admins, nil)

	w := postForm(t, env.sessions, h.Signup, "/signup", url.Values{
		"email":    {"stranger@example.com"},
		"password": {"long-enough-password"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, RouteSignup, w.Header().Get("Location"))

	_, err := env.queries.GetAccountByEmail(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSignup_DesignatedAdmin(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.db, env.renderer, env.sessions, env.admins, nil)

	w := postForm(t, env.sessions, h.Signup, "/signup", url.Values{
		"email":    {"Boss@Example.com"},
		"password": {"long-enough-password"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, RouteSignUpSuccess, w.Header().Get("Location"))

	account, err := env.queries.GetAccountByEmail(context.Background(), "boss@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, account.PasswordHash)
}

func TestSignup_ShortPassword(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.db, env.renderer, env.sessions, env.admins, nil)

	w := postForm(t, env.sessions, h.Signup, "/signup", url.Values{
		"email":    {"boss@example.com"},
		"password": {"short"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, RouteSignup, w.Header().Get("Location"))
}

func TestLogin_DesignatedAdminLandsOnDashboard(t *testing.T) {
	env := newTestEnv(t)
	h := NewAuthHandler(env.db, env.renderer, env.sessions, env.admins, nil)

	signup := postForm(t, env.sessions, h.Signup, "/signup", url.Values{
		"email":    {"boss@example.com"},
		"password": {"long-enough-password"},
	})
	require.Equal(t, RouteSignUpSuccess, signup.Header().Get("Location"))

	wrong := postForm(t, env.sessions, h.Login, "/login", url.Values{
		"email":    {"boss@example.com"},
		"password": {"not-the-password"},
	})
	assert.Equal(t, http.StatusSeeOther, wrong.Code)
	assert.Equal(t, RouteLogin, wrong.Header().Get("Location"))

	right := postForm(t, env.sessions, h.Login, "/login", url.Values{
		"email":    {"boss@example.com"},
		"password": {"long-enough-password"},
	})
	assert.Equal(t, http.StatusSeeOther, right.Code)
	assert.Equal(t, redirectAdmin, right.Header().Get("Location"))

	// First login bootstrapped the designated super admin
	admin, err := env.queries.GetAdminByEmail(context.Background(), "boss@example.com")
	require.NoError(t, err)
	assert.True(t, admin.IsSuperAdmin)
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t)
	h := NewFrontendHandler(env.db, env.renderer, env.sessions)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()
	env.sessions.LoadAndSave(http.HandlerFunc(h.NotFound)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}
