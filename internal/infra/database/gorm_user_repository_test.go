package database_test

import (
	"context"
	"database/sql"
	"testing"

	"phone_lookup_bot/internal/domain/user"
	idb "phone_lookup_bot/internal/infra/database"
)

func newTestRepo(t *testing.T) *idb.GormUserRepository {
	t.Helper()
	db, err := idb.NewSQLiteConnection("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("opening in-memory sqlite: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	// Each test starts from an empty table.
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("resetting users table: %v", err)
	}
	return idb.NewGormUserRepository(db)
}

func TestGormUserRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new record", func(t *testing.T) {
		repo := newTestRepo(t)

		u := &user.User{TelegramID: 100, DisplayName: sql.NullString{String: "Alice", Valid: true}}
		created, err := repo.Add(ctx, u)
		if err != nil {
			t.Fatalf("Add returned an error: %v", err)
		}
		if !created {
			t.Error("expected a new record to be created")
		}
		if u.ID == 0 {
			t.Error("expected the surrogate ID to be assigned")
		}
	})

	t.Run("repeat add for the same telegram ID is a no-op", func(t *testing.T) {
		repo := newTestRepo(t)

		first := &user.User{TelegramID: 100}
		if _, err := repo.Add(ctx, first); err != nil {
			t.Fatalf("first Add returned an error: %v", err)
		}

		second := &user.User{TelegramID: 100}
		created, err := repo.Add(ctx, second)
		if err != nil {
			t.Fatalf("second Add returned an error: %v", err)
		}
		if created {
			t.Error("expected the repeat add not to create a record")
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count returned an error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly one record, got %d", count)
		}
	})

	t.Run("display name is optional", func(t *testing.T) {
		repo := newTestRepo(t)

		u := &user.User{TelegramID: 200}
		if _, err := repo.Add(ctx, u); err != nil {
			t.Fatalf("Add returned an error: %v", err)
		}
	})
}

func TestGormUserRepository_ListTelegramIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, id := range []int64{100, 200, 300} {
		if _, err := repo.Add(ctx, &user.User{TelegramID: id}); err != nil {
			t.Fatalf("Add returned an error: %v", err)
		}
	}

	ids, err := repo.ListTelegramIDs(ctx)
	if err != nil {
		t.Fatalf("ListTelegramIDs returned an error: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 IDs, got %d", len(ids))
	}
	seen := make(map[int64]bool)
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range []int64{100, 200, 300} {
		if !seen[id] {
			t.Errorf("ID %d missing from the list", id)
		}
	}
}
