package entity

// ModelProfile holds the invocation parameters for one generation model.
// The numeric values are part of the behavioral contract per model: they
// change answer determinism and length, and must not be tuned ad hoc.
type ModelProfile struct {
	ID                  string
	Model               string
	Temperature         float64
	TopP                float64
	NumCtx              int
	NumPredict          int
	SystemPrompt        string
	SupportsAttribution bool
}

// EmbedRequest is the Ollama-compatible embeddings API payload.
type EmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type EmbedResponse struct {
	Embedding []float64 `json:"embedding"`
}

// GenerateOptions mirrors the Ollama runner options of a model profile.
type GenerateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumCtx      int     `json:"num_ctx"`
	NumPredict  int     `json:"num_predict"`
}

type GenerateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options GenerateOptions `json:"options"`
}

type GenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}
