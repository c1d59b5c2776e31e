package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/vector"
	"docqa-backend/internal/registry"
	"docqa-backend/internal/repository"
)

// QuestionUsecase runs the answer pipeline: embed the query, retrieve the
// nearest segments, prompt the model, parse its output, and persist the
// result with its attributions.
type QuestionUsecase struct {
	chatRepo     repository.ChatRepository
	questionRepo repository.QuestionRepository
	segmentRepo  repository.SegmentRepository
	statsRepo    repository.StatsRepository
	registry     *registry.Registry
	embedder     Embedder
	generator    Generator
	topK         int
	logger       *zap.Logger
}

// NewUsecase creates a new question use case
func NewUsecase(
	chatRepo repository.ChatRepository,
	questionRepo repository.QuestionRepository,
	segmentRepo repository.SegmentRepository,
	statsRepo repository.StatsRepository,
	registry *registry.Registry,
	embedder Embedder,
	generator Generator,
	topK int,
	logger *zap.Logger,
) *QuestionUsecase {
	return &QuestionUsecase{
		chatRepo:     chatRepo,
		questionRepo: questionRepo,
		segmentRepo:  segmentRepo,
		statsRepo:    statsRepo,
		registry:     registry,
		embedder:     embedder,
		generator:    generator,
		topK:         topK,
		logger:       logger,
	}
}

type createResult struct {
	question *entity.Question
	err      error
}

// Ask answers a question against the user's documents.
func (uc *QuestionUsecase) Ask(ctx context.Context, userID string, req *entity.AskQuestionRequest) (*entity.AskQuestionResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query", entity.ErrMissingField)
	}

	profile, err := uc.registry.Resolve(req.Model)
	if err != nil {
		return nil, err
	}

	if _, err := uc.chatRepo.Get(ctx, userID, req.ChatID); err != nil {
		return nil, err
	}

	// The question row and the query embedding are independent; run them
	// concurrently so the embedding round-trip overlaps the insert.
	createCh := make(chan createResult, 1)
	go func() {
		question, err := uc.questionRepo.Create(ctx, entity.Question{
			ID:     uuid.New().String(),
			UserID: userID,
			ChatID: req.ChatID,
			Query:  query,
		})
		createCh <- createResult{question: question, err: err}
	}()

	embedding, embedErr := uc.embedder.Embed(ctx, query)
	created := <-createCh

	if created.err != nil {
		return nil, fmt.Errorf("create question: %w", created.err)
	}
	if embedErr != nil {
		return nil, fmt.Errorf("embed query: %w", embedErr)
	}

	segments, err := uc.segmentRepo.SearchNearest(ctx, userID, vector.Normalize(embedding), req.DocumentIDs, uc.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve segments: %w", err)
	}

	ctxzap.Info(ctx, "segments retrieved",
		zap.String("question_id", created.question.ID),
		zap.String("model", profile.ID),
		zap.Int("segment_count", len(segments)),
	)

	// With nothing retrieved there is no context to answer from; skip the
	// model entirely and record the fallback.
	if len(segments) == 0 {
		return uc.finish(ctx, created.question.ID, profile, registry.FallbackAnswer, nil, nil)
	}

	raw, err := uc.generator.Generate(ctx, profile, buildPrompt(profile, query, segments))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	answer, claimedIDs := uc.interpret(ctx, profile, raw)

	sources := attributeSources(segments, claimedIDs)
	// A usable answer with no valid attribution is assumed to have drawn on
	// the whole retrieved context.
	if profile.SupportsAttribution && answer != registry.FallbackAnswer && len(sources) == 0 {
		sources = allSources(segments)
	}

	segmentIDs := make([]string, 0, len(sources))
	for _, source := range sources {
		segmentIDs = append(segmentIDs, source.SegmentID)
	}

	return uc.finish(ctx, created.question.ID, profile, answer, segmentIDs, sources)
}

// ListQuestions returns the user's full question history across chats,
// newest first, with attached sources.
func (uc *QuestionUsecase) ListQuestions(ctx context.Context, userID string) ([]*entity.Question, error) {
	questions, err := uc.questionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

// negativeMarkers are phrasings models use to say the context had no answer.
// An answer containing any of them is a negative result no matter how it is
// worded and collapses to the canonical fallback.
var negativeMarkers = []string{"not defined", "not found", "not mentioned"}

func containsNegativeMarker(answer string) bool {
	lower := strings.ToLower(answer)
	for _, marker := range negativeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// interpret turns raw model output into a final answer and the segment ids
// the model claims to have used. Unparseable output from an attribution
// model means the answer cannot be trusted and degrades to the fallback.
func (uc *QuestionUsecase) interpret(ctx context.Context, profile entity.ModelProfile, raw string) (string, []string) {
	if !profile.SupportsAttribution {
		answer := strings.TrimSpace(raw)
		if answer == "" || containsNegativeMarker(answer) {
			return registry.FallbackAnswer, nil
		}
		return answer, nil
	}

	answer, claimedIDs, ok := parseStructuredAnswer(raw)
	if !ok {
		ctxzap.Warn(ctx, "unparseable model output, falling back",
			zap.String("model", profile.ID),
			zap.Int("output_length", len(raw)),
		)
		return registry.FallbackAnswer, nil
	}

	// A negative result by definition used no segments. This also catches
	// the exact fallback phrase itself.
	if containsNegativeMarker(answer) {
		return registry.FallbackAnswer, nil
	}

	return answer, claimedIDs
}

// previewLength caps the source excerpt returned to the caller.
const previewLength = 200

// attributeSources keeps only claimed ids that were actually retrieved for
// this question. Hallucinated ids are silently dropped; the model cannot
// attribute an answer to a segment it never saw.
func attributeSources(segments []*entity.RetrievedSegment, claimedIDs []string) []*entity.Source {
	if len(claimedIDs) == 0 {
		return nil
	}

	retrieved := make(map[string]*entity.RetrievedSegment, len(segments))
	for _, segment := range segments {
		retrieved[segment.ID] = segment
	}

	seen := make(map[string]bool, len(claimedIDs))
	sources := make([]*entity.Source, 0, len(claimedIDs))
	for _, id := range claimedIDs {
		segment, ok := retrieved[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		sources = append(sources, sourceOf(segment))
	}

	if len(sources) == 0 {
		return nil
	}
	return sources
}

// allSources attributes every retrieved segment, in retrieval order.
func allSources(segments []*entity.RetrievedSegment) []*entity.Source {
	sources := make([]*entity.Source, 0, len(segments))
	for _, segment := range segments {
		sources = append(sources, sourceOf(segment))
	}
	return sources
}

func sourceOf(segment *entity.RetrievedSegment) *entity.Source {
	return &entity.Source{
		DocumentID: segment.DocumentID,
		FileName:   segment.FileName,
		SegmentID:  segment.ID,
		Preview:    previewOf(segment.Content),
	}
}

// previewOf bounds the excerpt to the first previewLength characters without
// ever splitting a rune.
func previewOf(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}

// finish persists the answer with its attributions, bumps the model usage
// counter, and builds the response.
func (uc *QuestionUsecase) finish(
	ctx context.Context,
	questionID string,
	profile entity.ModelProfile,
	answer string,
	segmentIDs []string,
	sources []*entity.Source,
) (*entity.AskQuestionResponse, error) {
	if err := uc.questionRepo.SetAnswer(ctx, questionID, answer, segmentIDs); err != nil {
		return nil, fmt.Errorf("persist answer: %w", err)
	}

	if err := uc.statsRepo.Increment(ctx, profile.ID); err != nil {
		ctxzap.Warn(ctx, "increment model usage", zap.String("model", profile.ID), zap.Error(err))
	}

	ctxzap.Info(ctx, "question answered",
		zap.String("question_id", questionID),
		zap.String("model", profile.ID),
		zap.Int("source_count", len(sources)),
	)

	return &entity.AskQuestionResponse{
		QuestionID: questionID,
		Answer:     answer,
		Sources:    sources,
	}, nil
}
