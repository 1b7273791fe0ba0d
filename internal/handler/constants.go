// Copyright (c) 2025-2026 Void Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"

	// RouteEvents is the public events route.
	RouteEvents = "/events"
	// RouteEventsID is the public event detail route pattern.
	RouteEventsID = RouteEvents + RouteParamID
	// RouteAbout is the about page route.
	RouteAbout = "/about"
	// RouteAlbum is the photo album route.
	RouteAlbum = "/album"
	// RouteJoin is the membership sign-up route.
	RouteJoin = "/join"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteSignup is the account sign-up route.
	RouteSignup = "/signup"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteSignUpSuccess is the post-signup notice route.
	RouteSignUpSuccess = "/auth/sign-up-success"

	// RouteGallery is the gallery admin route.
	RouteGallery = "/gallery"
	// RouteMembers is the members admin route.
	RouteMembers = "/members"
	// RouteAdmins is the admins admin route.
	RouteAdmins = "/admins"
	// RouteContent is the content admin route.
	RouteContent = "/content"
)

const (
	redirectAdmin          = "/admin"
	redirectAdminEvents    = redirectAdmin + RouteEvents
	redirectAdminGallery   = redirectAdmin + RouteGallery
	redirectAdminMembers   = redirectAdmin + RouteMembers
	redirectAdminAdmins    = redirectAdmin + RouteAdmins
	redirectAdminContent   = redirectAdmin + RouteContent
	redirectLogin          = RouteLogin
	redirectJoin           = RouteJoin

	redirectAdminEventsID = redirectAdminEvents + "/%d"
)
