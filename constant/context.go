package constant

type contextKey string

// UserIDKey holds the authenticated principal id set by the auth middleware.
const UserIDKey contextKey = "user_id"
