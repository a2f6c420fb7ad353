package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"phone_lookup_bot/internal/domain/user"
)

// userRecord is the GORM mapping of the users table.
type userRecord struct {
	ID          int64   `gorm:"primaryKey"`
	TelegramID  int64   `gorm:"uniqueIndex;not null"`
	DisplayName *string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (userRecord) TableName() string { return "users" }

// GormUserRepository implements user.Repository on top of GORM/SQLite.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the user unless a record with the same Telegram ID already
// exists. ON CONFLICT DO NOTHING keeps check-and-insert atomic; RowsAffected
// tells whether a new record was actually created.
func (r *GormUserRepository) Add(ctx context.Context, u *user.User) (bool, error) {
	rec := userRecord{
		TelegramID: u.TelegramID,
	}
	if u.DisplayName.Valid {
		name := u.DisplayName.String
		rec.DisplayName = &name
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "telegram_id"}}, DoNothing: true}).
		Create(&rec)
	if res.Error != nil {
		return false, fmt.Errorf("create user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	u.ID = rec.ID
	u.CreatedAt = rec.CreatedAt
	return true, nil
}

func (r *GormUserRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return int(count), nil
}

func (r *GormUserRepository) ListTelegramIDs(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	if err := r.db.WithContext(ctx).Model(&userRecord{}).Pluck("telegram_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list user telegram ids: %w", err)
	}
	return ids, nil
}
