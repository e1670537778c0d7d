// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repository stores survey responses in the survey_response table.

	repo := repository.NewSurveyRepository(conn)
	created, err := repo.Create(ctx, survey)

Lookups by id return ErrNotFound when no row matches. Every database
failure is wrapped with ErrStorage so callers can tell the two apart with
errors.Is.

favorite_foods is stored as a JSON text array. A value that cannot be
decoded is logged and read back as an empty list.
*/
package repository
