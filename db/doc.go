// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database pool and creates the schema.

# Connecting

Open picks the driver from the configuration and pings the database:

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

Supported backends:

  - postgres: github.com/lib/pq, DSN from Config.DSN
  - sqlite: modernc.org/sqlite, DATABASE_URL is a file path

SQLite paths without a query string get foreign keys, a busy timeout,
WAL journaling, and a parseable time format. The SQLite pool is limited
to one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.
The DDL is valid on both backends.

# Tables

  - survey_response: one row per submitted survey; favorite_foods holds
    a JSON text array

# Indexes

  - survey_response.created_at
*/
package db
