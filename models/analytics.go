// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// TrackedFood maps a food label to the analytics key that reports its percentage
type TrackedFood struct {
	Label string `json:"label"`
	Key   string `json:"key"`
}

// Analytics is the summary computed over every stored survey.
// FoodPercentages is keyed by TrackedFood.Key and flattened into the
// top-level JSON object.
type Analytics struct {
	TotalSurveys               int
	AverageAge                 int
	YoungestAge                int
	OldestAge                  int
	FoodPercentages            map[string]int
	AverageWatchMoviesRating   float64
	AverageListenToRadioRating float64
	AverageEatOutRating        float64
	AverageWatchTvRating       float64
}

// JSON keys that tracked foods may not reuse
const (
	keyTotalSurveys               = "totalSurveys"
	keyAverageAge                 = "averageAge"
	keyYoungestAge                = "youngestAge"
	keyOldestAge                  = "oldestAge"
	keyAverageWatchMoviesRating   = "averageWatchMoviesRating"
	keyAverageListenToRadioRating = "averageListenToRadioRating"
	keyAverageEatOutRating        = "averageEatOutRating"
	keyAverageWatchTvRating       = "averageWatchTvRating"
)

// IsReservedAnalyticsKey reports whether key collides with a fixed analytics field
func IsReservedAnalyticsKey(key string) bool {
	switch key {
	case keyTotalSurveys, keyAverageAge, keyYoungestAge, keyOldestAge,
		keyAverageWatchMoviesRating, keyAverageListenToRadioRating,
		keyAverageEatOutRating, keyAverageWatchTvRating:
		return true
	}
	return false
}

func (a Analytics) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 8+len(a.FoodPercentages))
	for key, pct := range a.FoodPercentages {
		out[key] = pct
	}
	out[keyTotalSurveys] = a.TotalSurveys
	out[keyAverageAge] = a.AverageAge
	out[keyYoungestAge] = a.YoungestAge
	out[keyOldestAge] = a.OldestAge
	out[keyAverageWatchMoviesRating] = a.AverageWatchMoviesRating
	out[keyAverageListenToRadioRating] = a.AverageListenToRadioRating
	out[keyAverageEatOutRating] = a.AverageEatOutRating
	out[keyAverageWatchTvRating] = a.AverageWatchTvRating
	return json.Marshal(out)
}

func (a *Analytics) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode analytics: %w", err)
	}

	*a = Analytics{FoodPercentages: make(map[string]int)}
	for key, v := range raw {
		switch key {
		case keyTotalSurveys:
			a.TotalSurveys = int(v)
		case keyAverageAge:
			a.AverageAge = int(v)
		case keyYoungestAge:
			a.YoungestAge = int(v)
		case keyOldestAge:
			a.OldestAge = int(v)
		case keyAverageWatchMoviesRating:
			a.AverageWatchMoviesRating = v
		case keyAverageListenToRadioRating:
			a.AverageListenToRadioRating = v
		case keyAverageEatOutRating:
			a.AverageEatOutRating = v
		case keyAverageWatchTvRating:
			a.AverageWatchTvRating = v
		default:
			a.FoodPercentages[key] = int(math.Round(v))
		}
	}
	return nil
}
