// Package common contains names shared by the storefront client layers.
package common

// Keys in the device-persistent store. They survive restarts.
const (
	UserTokenKey = "userToken"
	VisitorIDKey = "visitorId"
)

// LoginPopupShownKey lives in the session-scoped store and suppresses a
// repeated onboarding login prompt within one run.
const LoginPopupShownKey = "loginPopupShown"

// AuthorizationHeader carries the bearer credential on outbound requests.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)
