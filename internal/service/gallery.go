// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/voidlabs/crossstack/internal/store"
)

// PreviewLimit caps the number of images in the homepage album preview.
const PreviewLimit = 8

// Album is a published gallery event together with its ordered images.
type Album struct {
	Event  store.GalleryEvent
	Images []store.GalleryImage
}

// PreviewImage is a single image in the album preview strip, tagged with
// the title of the event it belongs to.
type PreviewImage struct {
	Image      store.GalleryImage
	EventTitle string
}

// GalleryService assembles albums and preview strips, and owns the
// append ordering of gallery events and images.
type GalleryService struct {
	queries *store.Queries
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(db *sql.DB) *GalleryService {
	return &GalleryService{queries: store.New(db)}
}

// Albums returns published gallery events, most recent first, each with
// its images in display order. Events without images are skipped.
func (s *GalleryService) Albums(ctx context.Context) ([]Album, error) {
	events, err := s.queries.ListPublishedGalleryEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gallery events: %w", err)
	}

	albums := []Album{}
	for _, ev := range events {
		images, err := s.queries.ListGalleryImages(ctx, ev.ID)
		if err != nil {
			return nil, fmt.Errorf("listing images for gallery event %d: %w", ev.ID, err)
		}
		if len(images) == 0 {
			continue
		}
		albums = append(albums, Album{Event: ev, Images: images})
	}
	return albums, nil
}

// Preview builds the homepage preview strip: for each published event in
// recency order, all featured images, or the first image by display
// order when none is featured. The concatenated list is truncated to
// PreviewLimit.
func (s *GalleryService) Preview(ctx context.Context) ([]PreviewImage, error) {
	events, err := s.queries.ListPublishedGalleryEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing gallery events: %w", err)
	}

	preview := []PreviewImage{}
	for _, ev := range events {
		if len(preview) >= PreviewLimit {
			break
		}

		images, err := s.queries.ListGalleryImages(ctx, ev.ID)
		if err != nil {
			return nil, fmt.Errorf("listing images for gallery event %d: %w", ev.ID, err)
		}
		if len(images) == 0 {
			continue
		}

		picked := []store.GalleryImage{}
		for _, img := range images {
			if img.IsFeatured {
				picked = append(picked, img)
			}
		}
		if len(picked) == 0 {
			picked = images[:1]
		}

		for _, img := range picked {
			preview = append(preview, PreviewImage{Image: img, EventTitle: ev.Title})
		}
	}

	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit]
	}
	return preview, nil
}

// CreateEvent creates a gallery event at the end of the display order.
func (s *GalleryService) CreateEvent(ctx context.Context, arg store.CreateGalleryEventParams) (store.GalleryEvent, error) {
	count, err := s.queries.CountGalleryEvents(ctx)
	if err != nil {
		return store.GalleryEvent{}, fmt.Errorf("counting gallery events: %w", err)
	}

	now := time.Now()
	arg.DisplayOrder = count
	arg.CreatedAt = now
	arg.UpdatedAt = now
	ev, err := s.queries.CreateGalleryEvent(ctx, arg)
	if err != nil {
		return store.GalleryEvent{}, fmt.Errorf("creating gallery event: %w", err)
	}
	return ev, nil
}

// AddImage appends an image to a gallery event. The new image's display
// order is the current sibling count, so images keep insertion order.
func (s *GalleryService) AddImage(ctx context.Context, arg store.CreateGalleryImageParams) (store.GalleryImage, error) {
	count, err := s.queries.CountGalleryImages(ctx, arg.GalleryEventID)
	if err != nil {
		return store.GalleryImage{}, fmt.Errorf("counting gallery images: %w", err)
	}

	now := time.Now()
	arg.DisplayOrder = count
	arg.CreatedAt = now
	arg.UpdatedAt = now
	img, err := s.queries.CreateGalleryImage(ctx, arg)
	if err != nil {
		return store.GalleryImage{}, fmt.Errorf("creating gallery image: %w", err)
	}
	return img, nil
}
