package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the hangout schema.
// Tables are created by hand for SQLite compatibility; the production DDL
// relies on PostgreSQL defaults.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE hangouts (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			creator_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			location TEXT,
			start_time DATETIME,
			end_time DATETIME,
			privacy TEXT NOT NULL DEFAULT 'PRIVATE',
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			max_participants INTEGER DEFAULT 0
		)`,
		`CREATE TABLE polls (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			creator_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			threshold INTEGER NOT NULL DEFAULT 70,
			min_participants INTEGER NOT NULL DEFAULT 2,
			options TEXT
		)`,
		`CREATE TABLE votes (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			poll_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			option_id TEXT NOT NULL,
			preferred INTEGER NOT NULL DEFAULT 0,
			UNIQUE (poll_id, user_id, option_id)
		)`,
		`CREATE TABLE participants (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'MEMBER',
			is_co_host INTEGER NOT NULL DEFAULT 0,
			can_edit INTEGER NOT NULL DEFAULT 0,
			is_mandatory INTEGER NOT NULL DEFAULT 0,
			UNIQUE (hangout_id, user_id)
		)`,
		`CREATE TABLE rsvps (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			hangout_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			responded_at DATETIME,
			UNIQUE (hangout_id, user_id)
		)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}

	return db
}
