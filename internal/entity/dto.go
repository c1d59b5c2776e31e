package entity

// AskQuestionRequest is the payload of POST /api/v1/questions.
// DocumentIDs narrows retrieval to specific documents; empty means all of
// the user's documents.
type AskQuestionRequest struct {
	ChatID      string   `json:"chat_id"`
	Model       string   `json:"model"`
	Query       string   `json:"query"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// AskQuestionResponse carries the generated answer and, when the model
// supports attribution, the segments it claims to have used.
type AskQuestionResponse struct {
	QuestionID string    `json:"question_id"`
	Answer     string    `json:"answer"`
	Sources    []*Source `json:"sources"`
}

type CreateChatRequest struct {
	Title string `json:"title"`
}
