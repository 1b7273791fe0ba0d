// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic shared by handlers: admin
// resolution and invitation, event partitioning and gallery selection.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voidlabs/crossstack/internal/model"
	"github.com/voidlabs/crossstack/internal/store"
)

var (
	// ErrAlreadyAdmin is returned by Invite when the email already has an admin row.
	ErrAlreadyAdmin = errors.New("email is already an admin")

	// ErrSelfDelete is returned when an admin attempts to delete its own row.
	ErrSelfDelete = errors.New("cannot delete your own admin account")

	// ErrSuperAdminDelete is returned when deleting a super-admin row.
	ErrSuperAdminDelete = errors.New("cannot delete a super admin")
)

// AdminService resolves accounts to admin rows and manages the admin roster.
type AdminService struct {
	queries    *store.Queries
	designated map[string]bool
}

// NewAdminService creates a new AdminService. The designated list holds
// emails allowed to self-provision a super-admin row on first login.
func NewAdminService(db *sql.DB, designated []string) *AdminService {
	set := make(map[string]bool, len(designated))
	for _, e := range designated {
		set[model.NormalizeEmail(e)] = true
	}
	return &AdminService{
		queries:    store.New(db),
		designated: set,
	}
}

// IsDesignated reports whether the email is on the designated admin allow-list.
func (s *AdminService) IsDesignated(email string) bool {
	return s.designated[model.NormalizeEmail(email)]
}

// Resolve returns the admin row for an account, if any. On first login it
// performs two reconciliations:
//
//   - an invited admin row carrying a placeholder user_id is claimed by
//     matching email, binding it to the real account;
//   - a designated email with no admin row gets a super-admin row.
//
// The bool result is false when the account is not an admin.
func (s *AdminService) Resolve(ctx context.Context, account store.Account) (store.Admin, bool, error) {
	admin, err := s.queries.GetAdminByUserID(ctx, account.ID)
	if err == nil {
		return admin, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.Admin{}, false, fmt.Errorf("looking up admin by user: %w", err)
	}

	email := model.NormalizeEmail(account.Email)

	admin, err = s.queries.GetAdminByEmail(ctx, email)
	if err == nil {
		// Invited row created before the account existed; claim it.
		if err := s.queries.UpdateAdminUserID(ctx, store.UpdateAdminUserIDParams{
			UserID:    account.ID,
			UpdatedAt: time.Now(),
			ID:        admin.ID,
		}); err != nil {
			return store.Admin{}, false, fmt.Errorf("claiming invited admin: %w", err)
		}
		admin.UserID = account.ID
		return admin, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.Admin{}, false, fmt.Errorf("looking up admin by email: %w", err)
	}

	if !s.designated[email] {
		return store.Admin{}, false, nil
	}

	now := time.Now()
	admin, err = s.queries.CreateAdmin(ctx, store.CreateAdminParams{
		UserID:       account.ID,
		Email:        email,
		IsSuperAdmin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return store.Admin{}, false, fmt.Errorf("bootstrapping designated admin: %w", err)
	}
	return admin, true, nil
}

// Invite creates an admin row for an email that has not logged in yet.
// The row carries a random placeholder user_id until Resolve claims it
// on the invitee's first login.
func (s *AdminService) Invite(ctx context.Context, email string, invitedBy int64) (store.Admin, error) {
	email = model.NormalizeEmail(email)

	_, err := s.queries.GetAdminByEmail(ctx, email)
	if err == nil {
		return store.Admin{}, ErrAlreadyAdmin
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.Admin{}, fmt.Errorf("checking existing admin: %w", err)
	}

	now := time.Now()
	admin, err := s.queries.CreateAdmin(ctx, store.CreateAdminParams{
		UserID:       uuid.NewString(),
		Email:        email,
		IsSuperAdmin: false,
		InvitedBy:    sql.NullInt64{Int64: invitedBy, Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return store.Admin{}, fmt.Errorf("creating invited admin: %w", err)
	}
	return admin, nil
}

// Delete removes an admin row. Self-deletion and super-admin deletion
// are rejected.
func (s *AdminService) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return ErrSelfDelete
	}

	admin, err := s.queries.GetAdminByID(ctx, id)
	if err != nil {
		return fmt.Errorf("looking up admin: %w", err)
	}
	if admin.IsSuperAdmin {
		return ErrSuperAdminDelete
	}

	return s.queries.DeleteAdmin(ctx, id)
}
