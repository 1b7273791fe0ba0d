// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain helpers shared by handlers and services:
// event date classification, gallery image list encoding and email
// normalization.
package model

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/voidlabs/crossstack/internal/store"
)

// IsPast reports whether the event's start date is strictly before now.
// An event starting exactly at now still counts as upcoming.
func IsPast(e store.Event, now time.Time) bool {
	return e.EventDate.Before(now)
}

// GalleryImages decodes the event's stored image URL list. A NULL or
// malformed column yields an empty slice.
func GalleryImages(e store.Event) []string {
	if !e.GalleryImages.Valid || e.GalleryImages.String == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(e.GalleryImages.String), &urls); err != nil {
		return []string{}
	}
	return urls
}

// EncodeGalleryImages encodes an ordered URL list for storage.
// An empty list is stored as NULL.
func EncodeGalleryImages(urls []string) sql.NullString {
	if len(urls) == 0 {
		return sql.NullString{}
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
