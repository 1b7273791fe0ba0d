// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/crossstack/internal/store"
	"github.com/voidlabs/crossstack/internal/testutil"
)

func createEvent(t *testing.T, q *store.Queries, title string, date time.Time, published bool) store.Event {
	t.Helper()

	now := time.Now().UTC()
	ev, err := q.CreateEvent(context.Background(), store.CreateEventParams{
		Title:       title,
		EventDate:   date,
		IsPublished: published,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)
	return ev
}

func TestMemberEmailUnique(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := q.CreateMember(ctx, store.CreateMemberParams{
		Email:     "dev@example.com",
		Name:      sql.NullString{String: "First Signup", Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = q.CreateMember(ctx, store.CreateMemberParams{
		Email:     "dev@example.com",
		Name:      sql.NullString{String: "Second Signup", Valid: true},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")

	// The original row is untouched
	got, err := q.GetMemberByEmail(ctx, "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "First Signup", got.Name.String)
	assert.False(t, got.IsApproved)
}

func TestEventPartition(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	createEvent(t, q, "Old Meetup", now.Add(-48*time.Hour), true)
	createEvent(t, q, "Last Week", now.Add(-7*24*time.Hour), true)
	createEvent(t, q, "Tomorrow", now.Add(24*time.Hour), true)
	createEvent(t, q, "Next Week", now.Add(7*24*time.Hour), true)
	createEvent(t, q, "Draft Future", now.Add(24*time.Hour), false)
	createEvent(t, q, "Starting Now", now, true)

	upcoming, err := q.ListUpcomingPublishedEvents(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	// Soonest first; an event starting exactly now is still upcoming
	assert.Equal(t, "Starting Now", upcoming[0].Title)
	assert.Equal(t, "Tomorrow", upcoming[1].Title)
	assert.Equal(t, "Next Week", upcoming[2].Title)

	past, err := q.ListPastPublishedEvents(ctx, now)
	require.NoError(t, err)
	require.Len(t, past, 2)
	// Most recent first
	assert.Equal(t, "Old Meetup", past[0].Title)
	assert.Equal(t, "Last Week", past[1].Title)

	limited, err := q.ListUpcomingPublishedEventsLimit(ctx, store.ListUpcomingPublishedEventsLimitParams{
		EventDate: now,
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "Starting Now", limited[0].Title)
}

func TestUpdateEventPreservesDetails(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ev := createEvent(t, q, "Workshop", now.Add(24*time.Hour), true)

	err := q.UpdateEventDetails(ctx, store.UpdateEventDetailsParams{
		EventDetails:  sql.NullString{String: "## Agenda", Valid: true},
		GalleryImages: sql.NullString{String: `["https://cdn.example.com/a.jpg"]`, Valid: true},
		UpdatedAt:     now,
		ID:            ev.ID,
	})
	require.NoError(t, err)

	// Editing the core fields must not clobber the detail page
	err = q.UpdateEvent(ctx, store.UpdateEventParams{
		Title:       "Workshop (renamed)",
		EventDate:   ev.EventDate,
		IsPublished: true,
		UpdatedAt:   now,
		ID:          ev.ID,
	})
	require.NoError(t, err)

	got, err := q.GetEventByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Workshop (renamed)", got.Title)
	assert.Equal(t, "## Agenda", got.EventDetails.String)
	assert.Equal(t, `["https://cdn.example.com/a.jpg"]`, got.GalleryImages.String)
}

func TestGalleryImageCascadeDelete(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ev, err := q.CreateGalleryEvent(ctx, store.CreateGalleryEventParams{
		Title:       "Hack Night",
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := q.CreateGalleryImage(ctx, store.CreateGalleryImageParams{
			GalleryEventID: ev.ID,
			ImageUrl:       "https://cdn.example.com/img.jpg",
			DisplayOrder:   int64(i),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		require.NoError(t, err)
	}

	count, err := q.CountGalleryImages(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, q.DeleteGalleryEvent(ctx, ev.ID))

	count, err = q.CountGalleryImages(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGalleryImagesFeaturedFirst(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	ev, err := q.CreateGalleryEvent(ctx, store.CreateGalleryEventParams{
		Title:       "Demo Day",
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	for i, featured := range []bool{false, true, false} {
		_, err := q.CreateGalleryImage(ctx, store.CreateGalleryImageParams{
			GalleryEventID: ev.ID,
			ImageUrl:       "https://cdn.example.com/img.jpg",
			DisplayOrder:   int64(i),
			IsFeatured:     featured,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		require.NoError(t, err)
	}

	images, err := q.ListGalleryImagesFeaturedFirst(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.True(t, images[0].IsFeatured)
	assert.Equal(t, int64(1), images[0].DisplayOrder)
}

func TestSeedIdempotent(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, db))
	require.NoError(t, store.Seed(ctx, db))

	q := store.New(db)
	content, err := q.ListContent(ctx)
	require.NoError(t, err)
	assert.Len(t, content, 3)

	hero, err := q.GetContentBySection(ctx, store.GetContentBySectionParams{Page: "home", Section: "hero"})
	require.NoError(t, err)
	assert.Equal(t, "Building a Community of Builders", hero.Title.String)
}

func TestAccountRoundTrip(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	q := store.New(db)
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := q.CreateAccount(ctx, store.CreateAccountParams{
		ID:           "11111111-2222-3333-4444-555555555555",
		Email:        "admin@example.com",
		PasswordHash: "$argon2id$...",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	assert.False(t, created.LastLoginAt.Valid)

	got, err := q.GetAccountByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = q.GetAccountByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
