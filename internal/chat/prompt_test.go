package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sahayak-backend/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	sess := &models.Session{UserID: "u1", Language: "en"}
	sess.AppendTurn("user", "hello", time.Now())
	sess.AppendTurn("bot", "hi, how can I help?", time.Now())

	schemes := []models.Scheme{{ID: "1", Name: "Test Yojana", MinAge: 18, MaxAge: 60}}

	prompt := BuildPrompt(sess, "which schemes apply to me?", schemes, false)

	assert.Contains(t, prompt, "ALLOWED LINKS")
	assert.Contains(t, prompt, "https://divyangkalyan.maharashtra.gov.in/login")
	assert.Contains(t, prompt, "RELEVANT SCHEMES")
	assert.Contains(t, prompt, "Test Yojana")
	assert.Contains(t, prompt, "RECENT CONVERSATION")
	assert.Contains(t, prompt, "user: hello")
	assert.Contains(t, prompt, "USER MESSAGE:\nwhich schemes apply to me?")
	assert.Contains(t, prompt, "in English")
}

func TestBuildPrompt_MarathiAndFallback(t *testing.T) {
	sess := &models.Session{UserID: "u1", Language: "mr"}

	prompt := BuildPrompt(sess, "योजना", []models.Scheme{{Name: "X"}}, true)

	assert.Contains(t, prompt, "GENERAL SCHEMES")
	assert.NotContains(t, prompt, "RELEVANT SCHEMES")
	assert.Contains(t, prompt, "in Marathi")
}

func TestBuildPrompt_NoSchemes(t *testing.T) {
	sess := &models.Session{UserID: "u1"}

	prompt := BuildPrompt(sess, "hello", nil, false)

	assert.Contains(t, prompt, "No matching schemes")
}

func TestBuildPrompt_CapsSchemeCount(t *testing.T) {
	sess := &models.Session{UserID: "u1"}
	many := make([]models.Scheme, promptSchemeCap+10)
	for i := range many {
		many[i] = models.Scheme{ID: "id", Name: "Scheme"}
	}

	prompt := BuildPrompt(sess, "schemes?", many, false)

	count := strings.Count(prompt, `"Scheme"`)
	assert.Equal(t, promptSchemeCap, count)
}
