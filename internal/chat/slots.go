package chat

import (
	"regexp"
	"strconv"
	"strings"

	"sahayak-backend/internal/models"
)

// Slot extraction is an ordered list of independent pattern rules. Each rule
// fills at most one slot and only when that slot is still empty; nothing here
// ever clears a previously extracted value. First match wins per slot.

type slotRule struct {
	name  string
	apply func(text, lower string, s *models.Slots)
}

var slotRules = []slotRule{
	{name: "percentage", apply: applyPercentage},
	{name: "disability", apply: applyDisability},
	{name: "age", apply: applyAge},
}

// ExtractSlots runs every rule against the message and merges results into
// the given slots.
func ExtractSlots(text string, s *models.Slots) {
	lower := strings.ToLower(text)
	for _, rule := range slotRules {
		rule.apply(text, lower, s)
	}
}

var (
	percentPattern        = regexp.MustCompile(`(\d{1,3})\s*(?:%|टक्के|takke|percent|percentage)`)
	labeledPercentPattern = regexp.MustCompile(`(?:percentage|percent|टक्केवारी|takkevari)\s*[:\-]?\s*(\d{1,3})`)
)

func applyPercentage(_, lower string, s *models.Slots) {
	if s.Percentage != 0 {
		return
	}
	m := percentPattern.FindStringSubmatch(lower)
	if m == nil {
		m = labeledPercentPattern.FindStringSubmatch(lower)
	}
	if m == nil {
		return
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 100 {
		return
	}
	s.Percentage = n
}

// disabilityKeywords pairs each category with its Marathi, transliterated and
// English spellings. Matching is case-insensitive substring containment.
var disabilityKeywords = []struct {
	category string
	keywords []string
}{
	{"blindness", []string{"अंधत्व", "अंध", "andha", "blind", "दृष्टिहीन"}},
	{"low vision", []string{"अल्पदृष्टी", "alpadrushti", "low vision"}},
	{"hearing impairment", []string{"कर्णबधिर", "karnabadhir", "बहिरा", "hearing", "deaf"}},
	{"locomotor disability", []string{"अस्थिव्यंग", "asthivyang", "locomotor", "orthopedic", "अपंग"}},
	{"intellectual disability", []string{"मतिमंद", "matimand", "बौद्धिक अक्षमता", "intellectual"}},
	{"mental illness", []string{"मानसिक आजार", "mansik aajar", "mental illness"}},
	{"cerebral palsy", []string{"सेरेब्रल पाल्सी", "cerebral palsy"}},
	{"multiple disabilities", []string{"बहुविकलांग", "bahuviklang", "multiple disabilities"}},
}

func applyDisability(_, lower string, s *models.Slots) {
	if s.DisabilityType != "" {
		return
	}
	for _, entry := range disabilityKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				s.DisabilityType = entry.category
				return
			}
		}
	}
}

var (
	// A leading non-letter guard keeps "age" from matching inside
	// "percentage". \b cannot be used here: Go's \b only understands ASCII
	// word characters, which would break the Devanagari alternatives.
	labeledAgePattern = regexp.MustCompile(`(?:^|[^a-z])(?:age|वय|उम्र|vay)\s*[:\-]?\s*(\d{1,3})`)
	bareNumberPattern = regexp.MustCompile(`\b\d{1,2}\b`)
)

// applyAge prefers an explicitly labeled age and otherwise falls back to the
// first bare 1-2 digit number that is not a percentage. The bare-number
// fallback is a known precision limitation: an unrelated small number in the
// message can be misread as age.
func applyAge(_, lower string, s *models.Slots) {
	if s.Age != 0 {
		return
	}
	if m := labeledAgePattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 100 {
			s.Age = n
		}
		return
	}
	for _, loc := range bareNumberPattern.FindAllStringIndex(lower, -1) {
		if isPercentNumber(lower, loc[0], loc[1]) {
			continue
		}
		n, err := strconv.Atoi(lower[loc[0]:loc[1]])
		if err != nil || n < 1 || n > 100 {
			continue
		}
		s.Age = n
		return
	}
}

// isPercentNumber reports whether the text around a number marks it as a
// percentage rather than an age, either a trailing "%"-style marker or a
// leading "percentage:" label.
func isPercentNumber(lower string, start, end int) bool {
	rest := strings.TrimLeft(lower[end:], " ")
	for _, marker := range []string{"%", "टक्के", "takke", "percent"} {
		if strings.HasPrefix(rest, marker) {
			return true
		}
	}
	before := strings.TrimRight(lower[:start], " :-")
	for _, label := range []string{"percentage", "percent", "टक्केवारी", "takkevari"} {
		if strings.HasSuffix(before, label) {
			return true
		}
	}
	return false
}

// DetectLanguage reports "mr" when the message contains Devanagari script,
// "en" otherwise.
func DetectLanguage(text string) string {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return "mr"
		}
	}
	return "en"
}
