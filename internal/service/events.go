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

// EventService partitions published events around a reference time.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{queries: store.New(db)}
}

// Upcoming returns published events starting at or after now, soonest first.
func (s *EventService) Upcoming(ctx context.Context, now time.Time) ([]store.Event, error) {
	events, err := s.queries.ListUpcomingPublishedEvents(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	return events, nil
}

// UpcomingLimit returns at most limit upcoming published events, soonest first.
func (s *EventService) UpcomingLimit(ctx context.Context, now time.Time, limit int64) ([]store.Event, error) {
	events, err := s.queries.ListUpcomingPublishedEventsLimit(ctx, store.ListUpcomingPublishedEventsLimitParams{
		EventDate: now,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	return events, nil
}

// Past returns published events that started before now, most recent first.
func (s *EventService) Past(ctx context.Context, now time.Time) ([]store.Event, error) {
	events, err := s.queries.ListPastPublishedEvents(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("listing past events: %w", err)
	}
	return events, nil
}
