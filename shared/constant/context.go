package constant

type contextKey string

// Values the auth middleware puts on the request context.
const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

// ContextSystem is written to created_by when nobody is signed in.
const ContextSystem = "system"
