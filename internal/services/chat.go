package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"sahayak-backend/internal/chat"
	"sahayak-backend/internal/models"
	"sahayak-backend/internal/schemes"
	"sahayak-backend/internal/session"
)

// ModelClient is the generative-model dependency of the chat pipeline.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService runs the full pipeline for one chat message: session lookup,
// slot extraction, scheme filtering, prompt construction, model call,
// coercion and link sanitization.
type ChatService struct {
	store      session.Store
	source     schemes.Source
	model      ModelClient
	maxSchemes int

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewChatService(store session.Store, source schemes.Source, model ModelClient, maxSchemes int) *ChatService {
	return &ChatService{
		store:      store,
		source:     source,
		model:      model,
		maxSchemes: maxSchemes,
		userLocks:  map[string]*sync.Mutex{},
	}
}

// userLock returns the mutex serializing all chats for one user. Holding it
// across the load-mutate-store span keeps concurrent chats from overwriting
// each other's turns and slots.
func (s *ChatService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

const (
	apologyEN = "Sorry, I could not process your request right now. Please try again."
	apologyMR = "क्षमस्व, सध्या आपली विनंती पूर्ण करता आली नाही. कृपया पुन्हा प्रयत्न करा."
)

// Apology returns the fixed failure message in the session's language.
func Apology(language string) string {
	if language == "mr" {
		return apologyMR
	}
	return apologyEN
}

func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, &ValidationError{Fields: map[string]string{"message": "Message is required"}}
	}

	userID := session.DefaultUserID
	if req.Context != nil && req.Context.UserID != "" {
		userID = req.Context.UserID
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.store.Get(ctx, userID)
	if err != nil {
		log.Printf("WARNING: session load failed for %s: %v", userID, err)
	}
	if sess == nil {
		sess = &models.Session{UserID: userID}
	}
	sess.Language = chat.DetectLanguage(message)

	// Slot extraction only adds information; session-remembered values stay.
	chat.ExtractSlots(message, &sess.Slots)
	if req.Context != nil && req.Context.AwaitingAge && sess.Slots.Age == 0 {
		if n, convErr := strconv.Atoi(message); convErr == nil && n >= 1 && n <= 100 {
			sess.Slots.Age = n
		}
	}

	now := time.Now()

	// Plain portal questions (login, registration, grievance) are answered
	// straight from the catalog without a model round-trip.
	if reply, links, ok := chat.TopicLink(message, sess.Language); ok {
		sess.AppendTurn("user", message, now)
		sess.AppendTurn("bot", reply, now)
		s.putSession(ctx, sess)
		return &models.ChatResponse{Message: reply, Links: links, Yojanas: []models.Scheme{}}, nil
	}

	filtered, fallback := s.relevantSchemes(ctx, message, sess.Slots)

	prompt := chat.BuildPrompt(sess, message, filtered, fallback)

	raw, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return nil, &ModelError{Err: err, Language: sess.Language}
	}

	reply := chat.Coerce(raw)
	links := chat.SanitizeLinks(reply.Links)
	text := strings.TrimSpace(reply.Message)
	if text == "" {
		text = Apology(sess.Language)
	}

	sess.AppendTurn("user", message, now)
	sess.AppendTurn("bot", text, time.Now())
	s.putSession(ctx, sess)

	return &models.ChatResponse{Message: text, Links: links, Yojanas: filtered}, nil
}

// relevantSchemes fetches and filters the scheme list when the message or the
// accumulated slots suggest a scheme query. A failing source degrades to an
// empty list, never an error.
func (s *ChatService) relevantSchemes(ctx context.Context, message string, slots models.Slots) ([]models.Scheme, bool) {
	criteria := schemes.Criteria{
		Age:            slots.Age,
		DisabilityType: slots.DisabilityType,
		Percentage:     slots.Percentage,
	}
	if !wantsSchemes(message) && criteria.Empty() {
		return []models.Scheme{}, false
	}

	all, err := s.source.Schemes(ctx)
	if err != nil {
		log.Printf("WARNING: scheme source unavailable: %v", err)
		return []models.Scheme{}, false
	}

	filtered, fallback := schemes.Filter(all, criteria, s.maxSchemes)
	if filtered == nil {
		filtered = []models.Scheme{}
	}
	return filtered, fallback
}

var schemeKeywords = []string{"yojana", "yojna", "scheme", "योजना", "अनुदान", "benefit", "लाभ", "शिष्यवृत्ती", "scholarship"}

func wantsSchemes(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range schemeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (s *ChatService) putSession(ctx context.Context, sess *models.Session) {
	if err := s.store.Put(ctx, sess); err != nil {
		log.Printf("WARNING: session store failed for %s: %v", sess.UserID, err)
	}
}
