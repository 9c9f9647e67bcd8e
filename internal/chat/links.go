package chat

import (
	"strings"

	"sahayak-backend/internal/models"
)

// Catalog is the fixed set of portal links the assistant is allowed to hand
// out. The model is shown this list in the prompt, but its reply is still
// filtered against it: anything not matching by URL is dropped.
var Catalog = []models.Link{
	{Label: "Portal Login", URL: "https://divyangkalyan.maharashtra.gov.in/login"},
	{Label: "New User Registration", URL: "https://divyangkalyan.maharashtra.gov.in/registration"},
	{Label: "Scheme Directory", URL: "https://divyangkalyan.maharashtra.gov.in/schemes"},
	{Label: "UDID Card Application", URL: "https://www.swavlambancard.gov.in/"},
	{Label: "Grievance Redressal", URL: "https://divyangkalyan.maharashtra.gov.in/grievance"},
	{Label: "Contact Us", URL: "https://divyangkalyan.maharashtra.gov.in/contact"},
}

// linkTopics maps message keywords to catalog URLs for direct answers that
// skip the model round-trip entirely.
var linkTopics = []struct {
	url      string
	keywords []string
	replyEN  string
	replyMR  string
}{
	{
		url:      "https://divyangkalyan.maharashtra.gov.in/login",
		keywords: []string{"login", "log in", "sign in", "लॉगिन", "लॉग इन"},
		replyEN:  "You can log in to the portal using the link below.",
		replyMR:  "खालील लिंक वापरून आपण पोर्टलवर लॉगिन करू शकता.",
	},
	{
		url:      "https://divyangkalyan.maharashtra.gov.in/registration",
		keywords: []string{"register", "registration", "sign up", "signup", "नोंदणी", "नवीन खाते"},
		replyEN:  "New users can register on the portal using the link below.",
		replyMR:  "नवीन वापरकर्ते खालील लिंक वापरून पोर्टलवर नोंदणी करू शकतात.",
	},
	{
		url:      "https://divyangkalyan.maharashtra.gov.in/grievance",
		keywords: []string{"grievance", "complaint", "तक्रार"},
		replyEN:  "You can file a grievance using the link below.",
		replyMR:  "खालील लिंक वापरून आपण तक्रार नोंदवू शकता.",
	},
}

// TopicLink returns a direct catalog answer for messages that are plainly
// about a portal function (login, registration, grievance). The bool reports
// whether a topic matched.
func TopicLink(message, language string) (string, []models.Link, bool) {
	lower := strings.ToLower(message)
	for _, topic := range linkTopics {
		for _, kw := range topic.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			reply := topic.replyEN
			if language == "mr" {
				reply = topic.replyMR
			}
			if link, ok := catalogByURL(topic.url); ok {
				return reply, []models.Link{link}, true
			}
		}
	}
	return "", nil, false
}

// SanitizeLinks keeps only candidate links whose URL exactly matches a
// catalog entry. The catalog copy is returned, not the candidate, so a
// hallucinated label cannot ride in on a real URL.
func SanitizeLinks(candidates []models.Link) []models.Link {
	out := []models.Link{}
	seen := make(map[string]bool)
	for _, c := range candidates {
		link, ok := catalogByURL(c.URL)
		if !ok || seen[link.URL] {
			continue
		}
		seen[link.URL] = true
		out = append(out, link)
	}
	return out
}

func catalogByURL(url string) (models.Link, bool) {
	for _, l := range Catalog {
		if l.URL == url {
			return l, true
		}
	}
	return models.Link{}, false
}
