// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// SeedDemo inserts sample events and a gallery album for local
// development. It is a no-op unless enabled and the events table is
// empty.
func SeedDemo(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)

	events, err := queries.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing events: %w", err)
	}
	if len(events) > 0 {
		slog.Info("events already exist, skipping demo seed")
		return nil
	}

	now := time.Now()

	demoEvents := []CreateEventParams{
		{
			Title:       "Go Workshop: Building Web Services",
			Description: sql.NullString{String: "Hands-on workshop covering HTTP servers, routing and testing in Go.", Valid: true},
			EventDate:   now.AddDate(0, 0, 14),
			Location:    sql.NullString{String: "Void Labs HQ, Hyderabad", Valid: true},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Community Hack Night",
			Description: sql.NullString{String: "Bring a project, pair up, ship something by midnight.", Valid: true},
			EventDate:   now.AddDate(0, 0, 30),
			Location:    sql.NullString{String: "Online", Valid: true},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			Title:       "Launch Meetup",
			Description: sql.NullString{String: "Our first meetup: talks, demos and pizza.", Valid: true},
			EventDate:   now.AddDate(0, -2, 0),
			Location:    sql.NullString{String: "Void Labs HQ, Hyderabad", Valid: true},
			IsPublished: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	for _, e := range demoEvents {
		if _, err := queries.CreateEvent(ctx, e); err != nil {
			return fmt.Errorf("creating demo event %q: %w", e.Title, err)
		}
	}

	album, err := queries.CreateGalleryEvent(ctx, CreateGalleryEventParams{
		Title:       "Launch Meetup",
		Description: sql.NullString{String: "Photos from our first meetup.", Valid: true},
		EventDate:   sql.NullTime{Time: now.AddDate(0, -2, 0), Valid: true},
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("creating demo gallery event: %w", err)
	}

	demoImages := []string{
		"https://images.example.com/launch/crowd.jpg",
		"https://images.example.com/launch/talks.jpg",
		"https://images.example.com/launch/pizza.jpg",
	}
	for i, url := range demoImages {
		if _, err := queries.CreateGalleryImage(ctx, CreateGalleryImageParams{
			GalleryEventID: album.ID,
			ImageUrl:       url,
			DisplayOrder:   int64(i),
			IsFeatured:     i == 0,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return fmt.Errorf("creating demo gallery image: %w", err)
		}
	}

	slog.Info("seeded demo content", "events", len(demoEvents), "gallery_images", len(demoImages))
	return nil
}
