package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sahayak-backend/internal/models"
	"sahayak-backend/internal/services"
)

type stubChatService struct {
	resp *models.ChatResponse
	err  error
}

func (s *stubChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.Message == "" {
		return nil, &services.ValidationError{Fields: map[string]string{"message": "Message is required"}}
	}
	return s.resp, s.err
}

func postChat(t *testing.T, h *ChatHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.ChatResponse {
	t.Helper()
	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

// ─── Health ───

func TestHealth_FixedPayload(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	var bodies []string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rr := httptest.NewRecorder()
		h.Health(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rr.Code)
		}
		bodies = append(bodies, rr.Body.String())
	}

	for _, b := range bodies {
		if b != bodies[0] {
			t.Errorf("Health payload not idempotent: %q vs %q", b, bodies[0])
		}
	}

	var payload map[string]bool
	if err := json.Unmarshal([]byte(bodies[0]), &payload); err != nil {
		t.Fatalf("Failed to parse health payload: %v", err)
	}
	if !payload["ok"] {
		t.Error("Expected ok=true in health payload")
	}
}

// ─── Chat validation ───

func TestChat_MissingMessage(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty message", `{"message": ""}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := postChat(t, h, []byte(tc.body))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}

			resp := decodeEnvelope(t, rr)
			if len(resp.Errors) == 0 {
				t.Error("Expected non-empty errors array")
			}
			if resp.Links == nil || len(resp.Links) != 0 {
				t.Errorf("Expected empty links array, got %v", resp.Links)
			}
			if resp.Yojanas == nil || len(resp.Yojanas) != 0 {
				t.Errorf("Expected empty yojanas array, got %v", resp.Yojanas)
			}
		})
	}
}

func TestChat_MalformedBody(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	rr := postChat(t, h, []byte(`{not json`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if len(resp.Errors) == 0 {
		t.Error("Expected non-empty errors array")
	}
}

// ─── Chat success and failure paths ───

func TestChat_Success(t *testing.T) {
	h := NewChatHandler(&stubChatService{
		resp: &models.ChatResponse{
			Message: "Here you go",
			Links:   []models.Link{{Label: "Portal Login", URL: "https://divyangkalyan.maharashtra.gov.in/login"}},
			Yojanas: []models.Scheme{},
		},
	})

	rr := postChat(t, h, []byte(`{"message": "login"}`))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if resp.Message != "Here you go" {
		t.Errorf("Expected message 'Here you go', got %q", resp.Message)
	}
	if len(resp.Links) != 1 {
		t.Errorf("Expected 1 link, got %d", len(resp.Links))
	}
}

func TestChat_ModelFailureReturns500Apology(t *testing.T) {
	h := NewChatHandler(&stubChatService{
		err: &services.ModelError{Err: errors.New("timeout")},
	})

	rr := postChat(t, h, []byte(`{"message": "hello"}`))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if resp.Message == "" {
		t.Error("Expected non-empty apology message")
	}
	if resp.Message != services.Apology("en") {
		t.Errorf("Expected fixed apology, got %q", resp.Message)
	}
	if len(resp.Links) != 0 || len(resp.Yojanas) != 0 {
		t.Error("Expected empty links and yojanas on failure")
	}
}

func TestChat_ModelFailureApologizesInSessionLanguage(t *testing.T) {
	h := NewChatHandler(&stubChatService{
		err: &services.ModelError{Err: errors.New("timeout"), Language: "mr"},
	})

	rr := postChat(t, h, []byte(`{"message": "मला योजना सांगा"}`))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	resp := decodeEnvelope(t, rr)
	if resp.Message != services.Apology("mr") {
		t.Errorf("Expected Marathi apology, got %q", resp.Message)
	}
}

func TestChat_UnexpectedErrorHidesDetail(t *testing.T) {
	h := NewChatHandler(&stubChatService{err: errors.New("pq: connection refused to 10.0.0.3")})

	rr := postChat(t, h, []byte(`{"message": "hello"}`))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("10.0.0.3")) {
		t.Error("Internal error detail leaked to client")
	}
}

// ─── Links catalog ───

func TestLinks_ReturnsCatalog(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
	rr := httptest.NewRecorder()
	h.Links(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var links []models.Link
	if err := json.NewDecoder(rr.Body).Decode(&links); err != nil {
		t.Fatalf("Failed to decode links: %v", err)
	}
	if len(links) == 0 {
		t.Error("Expected non-empty link catalog")
	}
	for _, l := range links {
		if l.Label == "" || l.URL == "" {
			t.Errorf("Catalog entry missing fields: %+v", l)
		}
	}
}
