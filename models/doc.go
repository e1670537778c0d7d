// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - SurveyResponse: one submitted survey (personal details, foods, ratings)
  - TrackedFood: food label counted individually in analytics
  - Analytics: summary statistics over all surveys

# Request Types

Types for parsing incoming JSON, carrying validator tags:

  - SubmitSurveyRequest: every field required
  - UpdateSurveyRequest: partial update, nil fields are left unchanged

Call Normalize before validating to trim text fields.

# Response Types

  - CreateSurveyResponse: message, surveyResponse
  - UpdateSurveyResponse: message, updatedSurvey
  - MessageResponse: message
  - AnalyticsResponse: message, data (null when there are no surveys)
  - ErrorResponse: error, message

# Analytics JSON

Analytics flattens its per-food percentages into the top-level object:

	{
	  "totalSurveys": 2,
	  "averageAge": 30,
	  "pizzaLoversPercentage": 50,
	  ...
	}

Food keys come from configuration, so a new tracked food adds a key
without code changes. Keys that collide with fixed fields are rejected
by IsReservedAnalyticsKey.
*/
package models
