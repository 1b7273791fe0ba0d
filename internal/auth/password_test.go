// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := CheckPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right-password")
	require.NoError(t, err)

	ok, err := CheckPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	_, err := CheckPassword("whatever", "not-a-hash")
	assert.Error(t, err)

	_, err = CheckPassword("whatever", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA")
	assert.Error(t, err)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("some-password")
	require.NoError(t, err)
	assert.False(t, NeedsRehash(hash))

	// Different memory parameter than the current defaults
	old := "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	assert.True(t, NeedsRehash(old))

	assert.True(t, NeedsRehash("garbage"))
}
