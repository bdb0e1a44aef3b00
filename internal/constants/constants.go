package constants

// Session and context keys
const (
	SessionCookieName = "office_session"
	ContextKeyUserID  = "user_id"
	ContextKeyActor   = "actor"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MinPasswordLength is the minimum accepted password length for
// credential-based accounts.
const MinPasswordLength = 8
