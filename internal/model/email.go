// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "strings"

// NormalizeEmail lowercases and trims an email address. All email
// comparisons and unique-column writes go through this so that
// "User@Example.COM" and "user@example.com" are the same address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
