package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sahayak-backend/internal/models"
)

func TestSanitizeLinks_SubsetOfCatalog(t *testing.T) {
	candidates := []models.Link{
		{Label: "Portal Login", URL: "https://divyangkalyan.maharashtra.gov.in/login"},
		{Label: "Totally Real Bank", URL: "https://evil.example/phish"},
		{Label: "Scheme Directory", URL: "https://divyangkalyan.maharashtra.gov.in/schemes"},
		{Label: "Almost Right", URL: "https://divyangkalyan.maharashtra.gov.in/login/extra"},
	}

	out := SanitizeLinks(candidates)

	assert.Len(t, out, 2)
	for _, l := range out {
		_, ok := catalogByURL(l.URL)
		assert.True(t, ok, "sanitized output contained non-catalog URL %s", l.URL)
	}
}

func TestSanitizeLinks_CatalogLabelWins(t *testing.T) {
	// A hallucinated label on a real URL is replaced by the catalog entry.
	out := SanitizeLinks([]models.Link{
		{Label: "Click here to win", URL: "https://divyangkalyan.maharashtra.gov.in/login"},
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "Portal Login", out[0].Label)
}

func TestSanitizeLinks_Deduplicates(t *testing.T) {
	out := SanitizeLinks([]models.Link{
		{URL: "https://divyangkalyan.maharashtra.gov.in/login"},
		{URL: "https://divyangkalyan.maharashtra.gov.in/login"},
	})

	assert.Len(t, out, 1)
}

func TestSanitizeLinks_EmptyAndAdversarial(t *testing.T) {
	assert.Empty(t, SanitizeLinks(nil))
	assert.Empty(t, SanitizeLinks([]models.Link{
		{Label: "x", URL: ""},
		{Label: "y", URL: "javascript:alert(1)"},
	}))
}

func TestTopicLink(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		language string
		wantURL  string
		wantHit  bool
	}{
		{"login english", "login", "en", "https://divyangkalyan.maharashtra.gov.in/login", true},
		{"login in sentence", "how do I log in?", "en", "https://divyangkalyan.maharashtra.gov.in/login", true},
		{"login marathi", "मला लॉगिन करायचे आहे", "mr", "https://divyangkalyan.maharashtra.gov.in/login", true},
		{"registration", "new user registration", "en", "https://divyangkalyan.maharashtra.gov.in/registration", true},
		{"grievance marathi", "तक्रार कशी करू?", "mr", "https://divyangkalyan.maharashtra.gov.in/grievance", true},
		{"scheme query is not a topic", "which yojana can I get?", "en", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply, links, ok := TopicLink(tc.message, tc.language)
			assert.Equal(t, tc.wantHit, ok)
			if !tc.wantHit {
				return
			}
			assert.NotEmpty(t, reply)
			assert.Len(t, links, 1)
			assert.Equal(t, tc.wantURL, links[0].URL)
		})
	}
}
