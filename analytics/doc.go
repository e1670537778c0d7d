// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package analytics computes survey summary statistics.

Aggregate is a pure function over a full set of survey records:

	summary := analytics.Aggregate(records, cfg.TrackedFoods)
	if summary == nil {
		// no surveys yet
	}

It reports the survey count, mean/min/max age, the share of respondents
listing each tracked food, and the mean of each activity rating. Food
labels match case-insensitively after trimming; labels that are not
tracked are ignored.
*/
package analytics
