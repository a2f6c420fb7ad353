package user

import (
	"database/sql"
	"time"
)

// User represents a registered bot user.
type User struct {
	ID          int64
	TelegramID  int64
	DisplayName sql.NullString // Full name as reported by Telegram; may be absent
	CreatedAt   time.Time
}
