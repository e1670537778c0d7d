// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Valid on both PostgreSQL and SQLite. Timestamps are always written by the
// repository, so no dialect-specific defaults are needed.
const schema = `
-- Survey responses
CREATE TABLE IF NOT EXISTS survey_response (
    id TEXT PRIMARY KEY,
    full_name TEXT NOT NULL,
    email TEXT NOT NULL,
    contact_number TEXT NOT NULL,
    age INTEGER NOT NULL CHECK (age >= 5 AND age <= 120),
    date_of_birth TEXT NOT NULL,
    favorite_foods TEXT NOT NULL DEFAULT '[]',
    rating_watch_movies INTEGER NOT NULL CHECK (rating_watch_movies >= 1 AND rating_watch_movies <= 5),
    rating_listen_to_radio INTEGER NOT NULL CHECK (rating_listen_to_radio >= 1 AND rating_listen_to_radio <= 5),
    rating_eat_out INTEGER NOT NULL CHECK (rating_eat_out >= 1 AND rating_eat_out <= 5),
    rating_watch_tv INTEGER NOT NULL CHECK (rating_watch_tv >= 1 AND rating_watch_tv <= 5),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_survey_response_created_at ON survey_response(created_at);
`
