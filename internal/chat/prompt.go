package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"sahayak-backend/internal/models"
)

// promptSchemeCap bounds how many schemes get serialized into the prompt, on
// top of whatever cap the filter already applied, to keep token cost bounded
// even if a caller passes an unfiltered list.
const promptSchemeCap = 15

// BuildPrompt assembles the single instruction blob sent to the model: scope
// preamble, output contract, link catalog, filtered schemes, recent turns and
// the current message.
func BuildPrompt(session *models.Session, message string, schemes []models.Scheme, fallback bool) string {
	var b strings.Builder

	b.WriteString(`You are Sahayak, the assistant of a government disability welfare (divyang) portal.
You ONLY help with: portal login, new user registration, and questions about
government welfare schemes (yojanas) for persons with disabilities. For anything
else, politely say it is outside your scope.

Reply with ONLY a valid JSON object, no markdown fences, in this exact shape:
{"message": "<your reply text>", "links": [{"label": "...", "url": "..."}]}

Rules:
- "links" may only contain entries copied verbatim from the ALLOWED LINKS list.
- Never invent URLs. If no link applies, return an empty links array.
`)

	if session.Language == "mr" {
		b.WriteString("- Write the \"message\" text in Marathi.\n")
	} else {
		b.WriteString("- Write the \"message\" text in English.\n")
	}

	catalogJSON, _ := json.Marshal(Catalog)
	fmt.Fprintf(&b, "\nALLOWED LINKS:\n%s\n", catalogJSON)

	if len(schemes) > promptSchemeCap {
		schemes = schemes[:promptSchemeCap]
	}
	switch {
	case len(schemes) > 0 && fallback:
		schemesJSON, _ := json.Marshal(schemes)
		fmt.Fprintf(&b, "\nGENERAL SCHEMES (nothing matched this user's eligibility exactly; present these as general suggestions, not guaranteed matches):\n%s\n", schemesJSON)
	case len(schemes) > 0:
		schemesJSON, _ := json.Marshal(schemes)
		fmt.Fprintf(&b, "\nRELEVANT SCHEMES (already filtered for this user):\n%s\n", schemesJSON)
	default:
		b.WriteString("\nNo matching schemes were found for this user.\n")
	}

	if len(session.Turns) > 0 {
		b.WriteString("\nRECENT CONVERSATION:\n")
		for _, turn := range session.Turns {
			fmt.Fprintf(&b, "%s: %s\n", turn.Sender, turn.Text)
		}
	}

	fmt.Fprintf(&b, "\nUSER MESSAGE:\n%s\n", message)

	return b.String()
}
