package users

import "context"

// System defines the public contract for user account operations.
type System interface {
	Handler() *Handler

	// Register creates an account. Name matching is case-insensitive, so
	// "Jane Doe" and "jane doe" are the same account.
	Register(ctx context.Context, cmd RegisterCommand) (*User, error)

	// Login verifies credentials and issues a signed token whose subject
	// is the registered name. Returns ErrBadCredentials on any mismatch.
	Login(ctx context.Context, cmd LoginCommand) (*TokenResult, error)
}
