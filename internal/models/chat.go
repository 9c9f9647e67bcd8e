package models

// ChatContext carries optional client-supplied metadata with a chat message.
type ChatContext struct {
	UserID      string `json:"userId"`
	Locale      string `json:"locale"`
	App         string `json:"app"`
	AwaitingAge bool   `json:"awaitingAge"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context,omitempty"`
}

// FieldError describes a single validation failure on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ChatResponse is the envelope returned by the chat endpoint. Links and
// Yojanas are always present, possibly empty. Errors is populated only on
// validation failures.
type ChatResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Links   []Link       `json:"links"`
	Yojanas []Scheme     `json:"yojanas"`
}
