package database

import (
	"context"
	"database/sql"
	"fmt"

	"phone_lookup_bot/internal/domain/user"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// Add inserts the user unless a record with the same Telegram ID already exists.
// The check-and-insert is a single statement, so concurrent registrations of
// the same ID cannot produce duplicate rows.
func (r *PostgresUserRepository) Add(ctx context.Context, u *user.User) (bool, error) {
	query := `INSERT INTO users (telegram_id, display_name)
               VALUES ($1, $2)
               ON CONFLICT (telegram_id) DO NOTHING
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, u.TelegramID, u.DisplayName).Scan(&u.ID, &u.CreatedAt)
	if err == sql.ErrNoRows {
		// Conflict: the user was already registered. Not an error.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error adding user: %w", err)
	}
	return true, nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func (r *PostgresUserRepository) ListTelegramIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT telegram_id FROM users`)
	if err != nil {
		return nil, fmt.Errorf("error listing user telegram IDs: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning user telegram ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user telegram IDs: %w", err)
	}
	return ids, nil
}
