// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"strings"
	"time"
)

// datetimeLocalLayout matches the value format of <input type="datetime-local">.
const datetimeLocalLayout = "2006-01-02T15:04"

// nullString wraps a trimmed form value, storing NULL for empty input.
func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseDateTimeLocal parses a datetime-local form value in local time.
func parseDateTimeLocal(s string) (time.Time, error) {
	return time.ParseInLocation(datetimeLocalLayout, strings.TrimSpace(s), time.Local)
}

// parseOptionalDateTimeLocal parses an optional datetime-local form value.
// Empty input yields an invalid NullTime; malformed input is an error.
func parseOptionalDateTimeLocal(s string) (sql.NullTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullTime{}, nil
	}
	t, err := parseDateTimeLocal(s)
	if err != nil {
		return sql.NullTime{}, err
	}
	return sql.NullTime{Time: t, Valid: true}, nil
}

// isUniqueViolation reports whether the error is a SQLite UNIQUE
// constraint failure. Matched on the message so it works with both
// drivers used by the project.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
