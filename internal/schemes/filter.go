package schemes

import (
	"strings"

	"sahayak-backend/internal/models"
)

// Criteria is the set of eligibility predicates extracted from the user's
// messages. Zero values mean "matches all".
type Criteria struct {
	Age            int
	DisabilityType string
	Percentage     int
	Publisher      string
}

func (c Criteria) Empty() bool {
	return c.Age == 0 && c.DisabilityType == "" && c.Percentage == 0 && c.Publisher == ""
}

// Filter returns the schemes compatible with the criteria, capped to max.
// When filtering yields nothing, the first max schemes are returned unfiltered
// as a best-effort fallback; the bool reports whether that fallback was taken.
// Precision is deliberately traded for recall there: an empty answer helps
// nobody, and the model is told the fallback schemes are general suggestions.
func Filter(all []models.Scheme, c Criteria, max int) ([]models.Scheme, bool) {
	matched := make([]models.Scheme, 0, len(all))
	for _, s := range all {
		if Matches(s, c) {
			matched = append(matched, s)
		}
	}

	fallback := false
	if len(matched) == 0 && !c.Empty() && len(all) > 0 {
		matched = all
		fallback = true
	}

	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}
	return matched, fallback
}

// Matches reports whether a single scheme satisfies every set criterion.
func Matches(s models.Scheme, c Criteria) bool {
	if c.Age != 0 && (c.Age < s.MinAge || c.Age > s.MaxAge) {
		return false
	}
	if c.Percentage != 0 && c.Percentage < s.RequiredDisabilityPercentage {
		return false
	}
	if c.DisabilityType != "" && !disabilityOverlaps(s.ApplicableDisabilityTypes, c.DisabilityType) {
		return false
	}
	if c.Publisher != "" && !strings.EqualFold(c.Publisher, s.Publisher) {
		return false
	}
	return true
}

// disabilityOverlaps checks case-insensitive substring containment in either
// direction, so "hearing" matches "hearing impairment" and vice versa. A
// scheme with no declared types applies to all.
func disabilityOverlaps(schemeTypes []string, wanted string) bool {
	if len(schemeTypes) == 0 {
		return true
	}
	w := strings.ToLower(wanted)
	for _, t := range schemeTypes {
		lt := strings.ToLower(t)
		if strings.Contains(lt, w) || strings.Contains(w, lt) {
			return true
		}
	}
	return false
}
