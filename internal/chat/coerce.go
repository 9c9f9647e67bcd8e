package chat

import (
	"encoding/json"
	"regexp"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"sahayak-backend/internal/models"
)

// ModelReply is the structured shape the model is asked to produce. Anything
// else it emits is ignored.
type ModelReply struct {
	Message string        `json:"message"`
	Links   []models.Link `json:"links"`
}

var bracePattern = regexp.MustCompile(`(?s)\{.*\}`)

// Coerce turns untrusted model text into a ModelReply. It never fails: the
// fallback ladder is strict parse, repair parse, first-brace substring parse,
// and finally wrapping the raw text as the message.
func Coerce(raw string) ModelReply {
	text := stripFences(raw)

	if reply, ok := tryParse(text); ok {
		return reply
	}

	if strings.Contains(text, "{") {
		if repaired, err := jsonrepair.RepairJSON(text); err == nil {
			if reply, ok := tryParse(repaired); ok {
				return reply
			}
		}
		if sub := bracePattern.FindString(text); sub != "" {
			if reply, ok := tryParse(sub); ok {
				return reply
			}
		}
	}

	return ModelReply{Message: strings.TrimSpace(raw)}
}

func tryParse(text string) (ModelReply, bool) {
	var reply ModelReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &reply); err != nil {
		return ModelReply{}, false
	}
	if strings.TrimSpace(reply.Message) == "" {
		return ModelReply{}, false
	}
	return reply, true
}

// stripFences drops markdown code-fence lines the model likes to wrap JSON in.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
