// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danielhkuo/pulsecheck/models"
)

var (
	// ErrNotFound indicates no survey has the requested id
	ErrNotFound = errors.New("survey response not found")
	// ErrStorage wraps every failure reported by the database
	ErrStorage = errors.New("storage failure")
)

const surveyColumns = `id, full_name, email, contact_number, age, date_of_birth, favorite_foods,
	rating_watch_movies, rating_listen_to_radio, rating_eat_out, rating_watch_tv,
	created_at, updated_at`

type SurveyRepository struct {
	db *sql.DB
	// lockRows adds FOR UPDATE to the read in Update. SQLite has no row
	// locks; its single connection already serializes transactions.
	lockRows bool
}

func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	_, isPostgres := db.Driver().(*pq.Driver)
	return &SurveyRepository{db: db, lockRows: isPostgres}
}

// Create inserts a survey and returns it with its generated id and timestamps
func (r *SurveyRepository) Create(ctx context.Context, s models.SurveyResponse) (models.SurveyResponse, error) {
	foods, err := EncodeFoods(s.FavoriteFoods)
	if err != nil {
		return models.SurveyResponse{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.FavoriteFoods == nil {
		s.FavoriteFoods = []string{}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO survey_response (`+surveyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, s.ID, s.FullName, s.Email, s.ContactNumber, s.Age, s.DateOfBirth, foods,
		s.RatingWatchMovies, s.RatingListenToRadio, s.RatingEatOut, s.RatingWatchTv,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return models.SurveyResponse{}, fmt.Errorf("insert survey: %w: %w", ErrStorage, err)
	}

	return s, nil
}

// GetByID returns ErrNotFound when no survey has the id
func (r *SurveyRepository) GetByID(ctx context.Context, id string) (models.SurveyResponse, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey_response
		WHERE id = $1
	`, id)
	return scanSurvey(row)
}

// GetAll returns every survey, oldest first
func (r *SurveyRepository) GetAll(ctx context.Context) ([]models.SurveyResponse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+surveyColumns+`
		FROM survey_response
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query surveys: %w: %w", ErrStorage, err)
	}
	defer rows.Close()

	surveys := []models.SurveyResponse{}
	for rows.Next() {
		s, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate surveys: %w: %w", ErrStorage, err)
	}

	return surveys, nil
}

// Update applies the non-nil fields of patch to one survey and bumps updatedAt.
// The row is locked for the read-modify-write so concurrent patches to
// different fields of the same survey are not lost.
func (r *SurveyRepository) Update(ctx context.Context, id string, patch models.UpdateSurveyRequest) (models.SurveyResponse, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SurveyResponse{}, fmt.Errorf("begin update: %w: %w", ErrStorage, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, selectForUpdate(r.lockRows), id)
	s, err := scanSurvey(row)
	if err != nil {
		return models.SurveyResponse{}, err
	}

	patch.ApplyTo(&s)
	s.UpdatedAt = time.Now().UTC()

	foods, err := EncodeFoods(s.FavoriteFoods)
	if err != nil {
		return models.SurveyResponse{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE survey_response
		SET full_name = $1, email = $2, contact_number = $3, age = $4, date_of_birth = $5,
		    favorite_foods = $6, rating_watch_movies = $7, rating_listen_to_radio = $8,
		    rating_eat_out = $9, rating_watch_tv = $10, updated_at = $11
		WHERE id = $12
	`, s.FullName, s.Email, s.ContactNumber, s.Age, s.DateOfBirth,
		foods, s.RatingWatchMovies, s.RatingListenToRadio,
		s.RatingEatOut, s.RatingWatchTv, s.UpdatedAt, id)
	if err != nil {
		return models.SurveyResponse{}, fmt.Errorf("update survey: %w: %w", ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return models.SurveyResponse{}, fmt.Errorf("commit update: %w: %w", ErrStorage, err)
	}

	return s, nil
}

func selectForUpdate(lock bool) string {
	query := `
		SELECT ` + surveyColumns + `
		FROM survey_response
		WHERE id = $1`
	if lock {
		query += `
		FOR UPDATE`
	}
	return query
}

// Delete returns ErrNotFound when no survey has the id
func (r *SurveyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM survey_response WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete survey: %w: %w", ErrStorage, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete survey: %w: %w", ErrStorage, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSurvey(row rowScanner) (models.SurveyResponse, error) {
	var s models.SurveyResponse
	var foods string
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.ContactNumber, &s.Age, &s.DateOfBirth, &foods,
		&s.RatingWatchMovies, &s.RatingListenToRadio, &s.RatingEatOut, &s.RatingWatchTv,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SurveyResponse{}, ErrNotFound
	}
	if err != nil {
		return models.SurveyResponse{}, fmt.Errorf("scan survey: %w: %w", ErrStorage, err)
	}

	s.FavoriteFoods = DecodeFoods(foods)
	if s.FavoriteFoods == nil {
		slog.Warn("unreadable favorite foods, using empty list", "survey_id", s.ID)
		s.FavoriteFoods = []string{}
	}

	return s, nil
}

// EncodeFoods serializes foods as a JSON text array. nil encodes as "[]".
func EncodeFoods(foods []string) (string, error) {
	if foods == nil {
		foods = []string{}
	}
	b, err := json.Marshal(foods)
	if err != nil {
		return "", fmt.Errorf("encode favorite foods: %w", err)
	}
	return string(b), nil
}

// DecodeFoods parses a JSON text array. Returns nil if raw is not a valid
// array of strings.
func DecodeFoods(raw string) []string {
	var foods []string
	if err := json.Unmarshal([]byte(raw), &foods); err != nil {
		return nil
	}
	if foods == nil {
		// "null"
		return []string{}
	}
	return foods
}
