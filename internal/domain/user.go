package domain

// User Model
type User struct {
	Username string `json:"username"` // Unique username (case-insensitive)
	Password string `json:"password"` // Bcrypt hash of the password
}

// PublicUser is the user record exposed to the admin console (no password)
type PublicUser struct {
	Username string `json:"username"` // Username only
}

// SessionUser is the ephemeral record for the active logged-in user
type SessionUser struct {
	Username string `json:"username"` // Username of the session owner
}

// AdminSession marks an authenticated admin; expires 24 hours after creation
type AdminSession struct {
	IsAdmin   bool  `json:"isAdmin"`   // Always true for a stored session
	Timestamp int64 `json:"timestamp"` // Creation time in milliseconds
}
