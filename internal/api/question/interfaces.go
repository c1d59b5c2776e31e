package question

import (
	"context"

	"docqa-backend/internal/entity"
)

type QuestionUsecase interface {
	Ask(ctx context.Context, userID string, req *entity.AskQuestionRequest) (*entity.AskQuestionResponse, error)
	ListQuestions(ctx context.Context, userID string) ([]*entity.Question, error)
}

type ModelCatalog interface {
	IDs() []string
}
