package models

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the reply body for POST /api/chat. Provider failures
// are embedded in Reply as displayable text, not signaled by status code.
type ChatResponse struct {
	Reply string `json:"reply"`
}
