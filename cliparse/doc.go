// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are read first (with defaults), then CLI flags
override them.

# Environment Variables

	PORT           → -p      Server port (default: 5000)
	DATABASE_TYPE  → -t      postgres or sqlite (default: postgres)
	DATABASE_URL   → -d      Full connection string or sqlite file path
	DEBUG          → -debug  Log at debug level

PostgreSQL connection parts, used when DATABASE_URL is empty:

	DB_HOST      (default: localhost)
	DB_PORT      (default: 5432)
	DB_USER      (default: postgres)
	DB_PASSWORD
	DB_NAME      (default: surveyDB)
	DB_SSL       true enables sslmode=require

HTTP and analytics:

	CORS_ORIGINS   comma-separated allow-list
	TRACKED_FOODS  comma-separated label:key pairs, e.g.
	               "pizza:pizzaLoversPercentage,pasta:pastaLoversPercentage"

# Connection String

Config.DSN returns DATABASE_URL verbatim when set. Otherwise it builds a
postgres:// URL from the DB_* parts with credentials escaped.

# Validation

ParseFlags returns an error for an out-of-range port, an unknown database
type, or a malformed, duplicate, or reserved tracked food key.
*/
package cliparse
