package app

import (
	"context"
	"database/sql"
	"fmt"

	"phone_lookup_bot/internal/domain/user"
)

// RegistrationService records users on their first /start.
type RegistrationService struct {
	userRepo user.Repository
}

func NewRegistrationService(ur user.Repository) *RegistrationService {
	return &RegistrationService{userRepo: ur}
}

// Register stores the user if not yet known and returns whether a new record
// was created plus the total user count. Registration is idempotent: a repeat
// /start from the same user is not an error. The count is taken after the
// insert, so a first-time registration is included in its own total.
func (s *RegistrationService) Register(ctx context.Context, telegramID int64, displayName string) (created bool, total int, err error) {
	var name sql.NullString
	if displayName != "" {
		name.String = displayName
		name.Valid = true
	}

	newUser := &user.User{
		TelegramID:  telegramID,
		DisplayName: name,
	}

	created, err = s.userRepo.Add(ctx, newUser)
	if err != nil {
		return false, 0, fmt.Errorf("failed to register user: %w", err)
	}

	total, err = s.userRepo.Count(ctx)
	if err != nil {
		return created, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return created, total, nil
}
