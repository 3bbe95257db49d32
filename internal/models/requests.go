package models

// CompletionRequest is the body of the text completion routes.
type CompletionRequest struct {
	Query string `json:"query" binding:"required"`
}

// VisionRequest is the body of the vision route.
type VisionRequest struct {
	Base64 string `json:"base64" binding:"required"`
}

// EmbeddingRequest is the body of the embedding route and the Cloudflare embedding call.
type EmbeddingRequest struct {
	Text []string `json:"text" binding:"required,min=1"`
}

// StoreVectorsRequest embeds Text and stores every vector with the same metadata.
type StoreVectorsRequest struct {
	Text     []string       `json:"text" binding:"required,min=1"`
	Metadata map[string]any `json:"metadata"`
}
