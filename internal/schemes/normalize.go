package schemes

import (
	"encoding/json"
	"strconv"
	"strings"

	"sahayak-backend/internal/models"
)

// The registry has gone through several backend rewrites and its field shapes
// are inconsistent: ids are numbers or strings, ages are numbers or numeric
// strings, the required percentage is a scalar in some records and an array
// in others, and disability types arrive as an array or a comma-joined
// string. rawScheme absorbs all of those shapes; normalize flattens them.

type rawScheme struct {
	ID                            flexString `json:"id"`
	Name                          string     `json:"name"`
	Description                   string     `json:"description"`
	MinAge                        flexInt    `json:"minAge"`
	MaxAge                        flexInt    `json:"maxAge"`
	ApplicationDeadline           string     `json:"applicationDeadline"`
	PublishDate                   string     `json:"publishDate"`
	RequiredDisabilityPercentage  flexInts   `json:"requiredDisabilityPercentage"`
	RequiredDisabilityPercentages flexInts   `json:"requiredDisabilityPercentages"`
	ApplicableDisabilityTypes     flexStrs   `json:"applicableDisabilityTypes"`
	Publisher                     string     `json:"publisher"`
}

func (r rawScheme) normalize() models.Scheme {
	maxAge := int(r.MaxAge)
	if maxAge == 0 {
		maxAge = 100
	}

	percentages := r.RequiredDisabilityPercentage
	if len(percentages) == 0 {
		percentages = r.RequiredDisabilityPercentages
	}
	required := 0
	for i, p := range percentages {
		if i == 0 || p < required {
			required = p
		}
	}

	return models.Scheme{
		ID:                           string(r.ID),
		Name:                         strings.TrimSpace(r.Name),
		Description:                  strings.TrimSpace(r.Description),
		MinAge:                       int(r.MinAge),
		MaxAge:                       maxAge,
		ApplicationDeadline:          r.ApplicationDeadline,
		PublishDate:                  r.PublishDate,
		RequiredDisabilityPercentage: required,
		ApplicableDisabilityTypes:    r.ApplicableDisabilityTypes,
		Publisher:                    strings.TrimSpace(r.Publisher),
	}
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// flexInt accepts a JSON number or a numeric string; anything else is zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			*f = flexInt(v)
			return nil
		}
	}
	*f = 0
	return nil
}

// flexInts accepts a scalar or an array of flexInt values.
type flexInts []int

func (f *flexInts) UnmarshalJSON(data []byte) error {
	var many []flexInt
	if err := json.Unmarshal(data, &many); err == nil {
		out := make([]int, len(many))
		for i, v := range many {
			out[i] = int(v)
		}
		*f = out
		return nil
	}
	var one flexInt
	if err := json.Unmarshal(data, &one); err == nil && one != 0 {
		*f = []int{int(one)}
		return nil
	}
	*f = nil
	return nil
}

// flexStrs accepts an array of strings or a single comma-joined string.
type flexStrs []string

func (f *flexStrs) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*f = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		parts := strings.Split(one, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*f = out
		return nil
	}
	*f = nil
	return nil
}
