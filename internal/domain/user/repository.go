package user

import (
	"context"
)

// Repository defines the operations for persisting and retrieving registered users.
type Repository interface {
	// Add registers the user if no record with the same Telegram ID exists yet.
	// It reports whether a new record was created; an existing record is not an error.
	Add(ctx context.Context, u *User) (created bool, err error)
	Count(ctx context.Context) (int, error)
	// ListTelegramIDs returns the Telegram IDs of all registered users, in no particular order.
	ListTelegramIDs(ctx context.Context) ([]int64, error)
}
