// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pulsecheck API server.

pulsecheck collects lifestyle survey responses (personal details, favourite
foods, and 1-5 ratings for watching movies, listening to radio, eating out
and watching TV) and serves summary analytics over them.

# Starting the Server

Configuration comes from the environment, an optional .env file, or CLI
flags:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 5000 -t sqlite -d pulsecheck.db

# Configuration

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DATABASE_URL (-d): connection string, or file path for sqlite
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSL: postgres
    connection parts when DATABASE_URL is empty
  - CORS_ORIGINS: allowed frontend origins
  - TRACKED_FOODS: foods reported in analytics, as label:key pairs
  - DEBUG (-debug): debug logging

# Architecture

  - handlers: HTTP request handlers for surveys and analytics
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, security headers, logging, JSON helpers
  - repository: survey_response storage
  - analytics: Aggregation over all surveys
  - models: Domain, request and response types
  - db: Connection pool and schema creation
  - cliparse: Configuration parsing

The database pool is opened once at startup, shared by all requests, and
closed after the HTTP server has drained on SIGINT or SIGTERM.
*/
package main
