package domain

import (
	"regexp"
	"strconv"
)

// Repositories name their estimate labels inconsistently ("100 points",
// "pts-50", "points:7", "50pts", sometimes a bare number), so both word
// orders are accepted and the point word itself is optional.
const pointWords = `(?:points?|poins?|pts?)`

var (
	valueFirstPattern = regexp.MustCompile(`(?i)^\d+[ :_-]?` + pointWords + `?$`)
	wordFirstPattern  = regexp.MustCompile(`(?i)^` + pointWords + `[ :_-]?\d+$`)
	digitRun          = regexp.MustCompile(`\d+`)
)

// PointsFromLabels extracts the point value of an issue from its label set.
// Labels are scanned in original order and the first matching label wins;
// at most one points-label is expected per issue, so ambiguity is not
// resolved by magnitude. No matching label means zero points.
func PointsFromLabels(labels []Label) int {
	for _, label := range labels {
		if !valueFirstPattern.MatchString(label.Name) && !wordFirstPattern.MatchString(label.Name) {
			continue
		}

		value, err := strconv.Atoi(digitRun.FindString(label.Name))
		if err != nil {
			continue
		}
		return value
	}

	return 0
}
