// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"math"
	"strings"

	"github.com/danielhkuo/pulsecheck/models"
)

// DefaultTrackedFoods are the foods offered on the survey form
var DefaultTrackedFoods = []models.TrackedFood{
	{Label: "pizza", Key: "pizzaLoversPercentage"},
	{Label: "pasta", Key: "pastaLoversPercentage"},
	{Label: "pap and wors", Key: "papAndWorsLoversPercentage"},
}

// Aggregate computes summary statistics over records.
// Returns nil when there are no records.
func Aggregate(records []models.SurveyResponse, foods []models.TrackedFood) *models.Analytics {
	total := len(records)
	if total == 0 {
		return nil
	}

	ageSum := 0
	youngest, oldest := records[0].Age, records[0].Age
	foodCounts := make([]int, len(foods))
	var moviesSum, radioSum, eatOutSum, watchTvSum int

	for _, r := range records {
		ageSum += r.Age
		youngest = min(youngest, r.Age)
		oldest = max(oldest, r.Age)

		for i, food := range foods {
			if likes(r.FavoriteFoods, food.Label) {
				foodCounts[i]++
			}
		}

		moviesSum += rating(r.RatingWatchMovies)
		radioSum += rating(r.RatingListenToRadio)
		eatOutSum += rating(r.RatingEatOut)
		watchTvSum += rating(r.RatingWatchTv)
	}

	percentages := make(map[string]int, len(foods))
	for i, food := range foods {
		percentages[food.Key] = Percentage(foodCounts[i], total)
	}

	return &models.Analytics{
		TotalSurveys:               total,
		AverageAge:                 int(math.Round(mean(ageSum, total))),
		YoungestAge:                youngest,
		OldestAge:                  oldest,
		FoodPercentages:            percentages,
		AverageWatchMoviesRating:   mean(moviesSum, total),
		AverageListenToRadioRating: mean(radioSum, total),
		AverageEatOutRating:        mean(eatOutSum, total),
		AverageWatchTvRating:       mean(watchTvSum, total),
	}
}

// Percentage returns count/total as a whole percentage
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// likes reports whether foods contains label, ignoring case and surrounding space
func likes(foods []string, label string) bool {
	label = strings.TrimSpace(label)
	for _, f := range foods {
		if strings.EqualFold(strings.TrimSpace(f), label) {
			return true
		}
	}
	return false
}

// rating counts an unanswered or invalid rating as 0
func rating(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func mean(sum, n int) float64 {
	if n == 0 {
		return 0.0
	}
	return float64(sum) / float64(n)
}
