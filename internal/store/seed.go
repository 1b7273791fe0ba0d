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

// Default content sections rendered on the public pages. Editors can
// change the copy from the admin dashboard; these rows make sure every
// section exists so the templates never render an empty block.
var defaultContent = []struct {
	Page    string
	Section string
	Title   string
	Body    string
}{
	{
		Page:    "home",
		Section: "hero",
		Title:   "Building a Community of Builders",
		Body:    "CrossStack brings together developers, designers and founders to learn, ship and grow across the stack.",
	},
	{
		Page:    "about",
		Section: "story",
		Title:   "Our Story",
		Body:    "CrossStack started as a handful of engineers meeting over coffee. Today it is a growing community running workshops, hack nights and talks.",
	},
	{
		Page:    "about",
		Section: "values",
		Title:   "What We Value",
		Body:    "Curiosity, craftsmanship and community. We learn in public and help each other ship.",
	},
}

// Seed creates initial data in the database.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)
	now := time.Now()

	for _, c := range defaultContent {
		_, err := queries.GetContentBySection(ctx, GetContentBySectionParams{
			Page:    c.Page,
			Section: c.Section,
		})
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("checking content %s/%s: %w", c.Page, c.Section, err)
		}

		_, err = queries.CreateContent(ctx, CreateContentParams{
			Page:      c.Page,
			Section:   c.Section,
			Title:     sql.NullString{String: c.Title, Valid: true},
			Body:      sql.NullString{String: c.Body, Valid: true},
			Metadata:  "{}",
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("creating content %s/%s: %w", c.Page, c.Section, err)
		}
		slog.Info("seeded content section", "page", c.Page, "section", c.Section)
	}

	return nil
}
