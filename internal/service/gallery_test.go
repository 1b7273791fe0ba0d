// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidlabs/crossstack/internal/store"
	"github.com/voidlabs/crossstack/internal/testutil"
)

func createGalleryEvent(t *testing.T, svc *GalleryService, title string, date time.Time, published bool) store.GalleryEvent {
	t.Helper()

	ev, err := svc.CreateEvent(context.Background(), store.CreateGalleryEventParams{
		Title:       title,
		EventDate:   sql.NullTime{Time: date, Valid: true},
		IsPublished: published,
	})
	require.NoError(t, err)
	return ev
}

func addImages(t *testing.T, svc *GalleryService, eventID int64, featured ...bool) []store.GalleryImage {
	t.Helper()

	images := make([]store.GalleryImage, 0, len(featured))
	for i, f := range featured {
		img, err := svc.AddImage(context.Background(), store.CreateGalleryImageParams{
			GalleryEventID: eventID,
			ImageUrl:       fmt.Sprintf("https://cdn.example.com/%d-%d.jpg", eventID, i),
			IsFeatured:     f,
		})
		require.NoError(t, err)
		images = append(images, img)
	}
	return images
}

func TestGalleryService_AppendOrder(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewGalleryService(db)

	e1 := createGalleryEvent(t, svc, "First", time.Now().UTC(), true)
	e2 := createGalleryEvent(t, svc, "Second", time.Now().UTC(), true)
	assert.Equal(t, int64(0), e1.DisplayOrder)
	assert.Equal(t, int64(1), e2.DisplayOrder)

	images := addImages(t, svc, e1.ID, false, false, false)
	assert.Equal(t, int64(0), images[0].DisplayOrder)
	assert.Equal(t, int64(1), images[1].DisplayOrder)
	assert.Equal(t, int64(2), images[2].DisplayOrder)

	// Ordering is independent per event
	other := addImages(t, svc, e2.ID, false)
	assert.Equal(t, int64(0), other[0].DisplayOrder)
}

func TestGalleryService_Albums(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewGalleryService(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	newer := createGalleryEvent(t, svc, "Newer", now, true)
	older := createGalleryEvent(t, svc, "Older", now.Add(-24*time.Hour), true)
	createGalleryEvent(t, svc, "Empty", now.Add(-48*time.Hour), true)
	draft := createGalleryEvent(t, svc, "Draft", now.Add(-72*time.Hour), false)

	addImages(t, svc, newer.ID, false, false)
	addImages(t, svc, older.ID, false)
	addImages(t, svc, draft.ID, false)

	albums, err := svc.Albums(ctx)
	require.NoError(t, err)
	require.Len(t, albums, 2)

	// Most recent first; empty and unpublished events are skipped
	assert.Equal(t, "Newer", albums[0].Event.Title)
	assert.Len(t, albums[0].Images, 2)
	assert.Equal(t, "Older", albums[1].Event.Title)
}

func TestGalleryService_Preview(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewGalleryService(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Newer event: two images, one featured
	e1 := createGalleryEvent(t, svc, "Launch Party", now, true)
	e1imgs := addImages(t, svc, e1.ID, false, true)

	// Older event: three images, none featured
	e2 := createGalleryEvent(t, svc, "Hack Night", now.Add(-24*time.Hour), true)
	e2imgs := addImages(t, svc, e2.ID, false, false, false)

	preview, err := svc.Preview(ctx)
	require.NoError(t, err)
	require.Len(t, preview, 2)

	// Featured image from the newer event, then the first image of the older
	assert.Equal(t, e1imgs[1].ID, preview[0].Image.ID)
	assert.Equal(t, "Launch Party", preview[0].EventTitle)
	assert.Equal(t, e2imgs[0].ID, preview[1].Image.ID)
	assert.Equal(t, "Hack Night", preview[1].EventTitle)
}

func TestGalleryService_PreviewTruncated(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewGalleryService(db)
	ctx := context.Background()

	ev := createGalleryEvent(t, svc, "Conference", time.Now().UTC(), true)
	featured := make([]bool, PreviewLimit+4)
	for i := range featured {
		featured[i] = true
	}
	addImages(t, svc, ev.ID, featured...)

	preview, err := svc.Preview(ctx)
	require.NoError(t, err)
	assert.Len(t, preview, PreviewLimit)
}

func TestGalleryService_PreviewEmpty(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	svc := NewGalleryService(db)

	preview, err := svc.Preview(context.Background())
	require.NoError(t, err)
	assert.Empty(t, preview)
}
