package models

import (
	"strings"
	"time"
)

// Response messages
const (
	MessageSurveyCreated   = "Survey response created successfully"
	MessageSurveyUpdated   = "Survey Response updated successfully"
	MessageSurveyDeleted   = "Survey Response deleted successfully"
	MessageAnalyticsLoaded = "Survey analytics fetched successfully"
)

// DateLayout is the wire and storage format for dateOfBirth
const DateLayout = "2006-01-02"

// Domain types

// SurveyResponse is one submitted survey
type SurveyResponse struct {
	ID                  string    `json:"id"`
	FullName            string    `json:"fullName"`
	Email               string    `json:"email"`
	ContactNumber       string    `json:"contactNumber"`
	Age                 int       `json:"age"`
	DateOfBirth         string    `json:"dateOfBirth"`
	FavoriteFoods       []string  `json:"favoriteFoods"`
	RatingWatchMovies   int       `json:"ratingWatchMovies"`
	RatingListenToRadio int       `json:"ratingListenToRadio"`
	RatingEatOut        int       `json:"ratingEatOut"`
	RatingWatchTv       int       `json:"ratingWatchTv"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Request types

// SubmitSurveyRequest is the POST /api/survey body.
// Pointer fields distinguish a missing value from zero.
type SubmitSurveyRequest struct {
	FullName            string   `json:"fullName" validate:"required"`
	Email               string   `json:"email" validate:"required"`
	ContactNumber       string   `json:"contactNumber" validate:"required"`
	Age                 *int     `json:"age" validate:"required,min=5,max=120"`
	DateOfBirth         string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	FavoriteFoods       []string `json:"favoriteFoods" validate:"required,min=1,dive,required"`
	RatingWatchMovies   *int     `json:"ratingWatchMovies" validate:"required,min=1,max=5"`
	RatingListenToRadio *int     `json:"ratingListenToRadio" validate:"required,min=1,max=5"`
	RatingEatOut        *int     `json:"ratingEatOut" validate:"required,min=1,max=5"`
	RatingWatchTv       *int     `json:"ratingWatchTv" validate:"required,min=1,max=5"`
}

// Normalize trims whitespace from every text field
func (r *SubmitSurveyRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.ContactNumber = strings.TrimSpace(r.ContactNumber)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.FavoriteFoods = trimAll(r.FavoriteFoods)
}

// SurveyResponse converts a validated request into a record without id or timestamps
func (r SubmitSurveyRequest) SurveyResponse() SurveyResponse {
	return SurveyResponse{
		FullName:            r.FullName,
		Email:               r.Email,
		ContactNumber:       r.ContactNumber,
		Age:                 deref(r.Age),
		DateOfBirth:         r.DateOfBirth,
		FavoriteFoods:       r.FavoriteFoods,
		RatingWatchMovies:   deref(r.RatingWatchMovies),
		RatingListenToRadio: deref(r.RatingListenToRadio),
		RatingEatOut:        deref(r.RatingEatOut),
		RatingWatchTv:       deref(r.RatingWatchTv),
	}
}

// UpdateSurveyRequest is the PUT /api/survey/{id} body. Only non-nil fields change.
type UpdateSurveyRequest struct {
	FullName            *string  `json:"fullName" validate:"omitnil,min=1"`
	Email               *string  `json:"email" validate:"omitnil,min=1"`
	ContactNumber       *string  `json:"contactNumber" validate:"omitnil,min=1"`
	Age                 *int     `json:"age" validate:"omitnil,min=5,max=120"`
	DateOfBirth         *string  `json:"dateOfBirth" validate:"omitnil,datetime=2006-01-02"`
	FavoriteFoods       []string `json:"favoriteFoods" validate:"omitnil,min=1,dive,required"`
	RatingWatchMovies   *int     `json:"ratingWatchMovies" validate:"omitnil,min=1,max=5"`
	RatingListenToRadio *int     `json:"ratingListenToRadio" validate:"omitnil,min=1,max=5"`
	RatingEatOut        *int     `json:"ratingEatOut" validate:"omitnil,min=1,max=5"`
	RatingWatchTv       *int     `json:"ratingWatchTv" validate:"omitnil,min=1,max=5"`
}

// Normalize trims whitespace from every text field that is present
func (r *UpdateSurveyRequest) Normalize() {
	for _, s := range []*string{r.FullName, r.Email, r.ContactNumber, r.DateOfBirth} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if r.FavoriteFoods != nil {
		r.FavoriteFoods = trimAll(r.FavoriteFoods)
	}
}

// ApplyTo copies the present fields onto s
func (r UpdateSurveyRequest) ApplyTo(s *SurveyResponse) {
	if r.FullName != nil {
		s.FullName = *r.FullName
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.ContactNumber != nil {
		s.ContactNumber = *r.ContactNumber
	}
	if r.Age != nil {
		s.Age = *r.Age
	}
	if r.DateOfBirth != nil {
		s.DateOfBirth = *r.DateOfBirth
	}
	if r.FavoriteFoods != nil {
		s.FavoriteFoods = append([]string(nil), r.FavoriteFoods...)
	}
	if r.RatingWatchMovies != nil {
		s.RatingWatchMovies = *r.RatingWatchMovies
	}
	if r.RatingListenToRadio != nil {
		s.RatingListenToRadio = *r.RatingListenToRadio
	}
	if r.RatingEatOut != nil {
		s.RatingEatOut = *r.RatingEatOut
	}
	if r.RatingWatchTv != nil {
		s.RatingWatchTv = *r.RatingWatchTv
	}
}

// Response types

type CreateSurveyResponse struct {
	Message        string         `json:"message"`
	SurveyResponse SurveyResponse `json:"surveyResponse"`
}

type UpdateSurveyResponse struct {
	Message       string         `json:"message"`
	UpdatedSurvey SurveyResponse `json:"updatedSurvey"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Data is nil when no surveys exist and encodes as null
type AnalyticsResponse struct {
	Message string     `json:"message"`
	Data    *Analytics `json:"data"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
