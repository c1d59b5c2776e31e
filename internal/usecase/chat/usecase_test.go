package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/formatter"
)

const (
	testUserID = "11111111-1111-1111-1111-111111111111"
	testChatID = "22222222-2222-2222-2222-222222222222"
)

type fakeChatRepo struct {
	chats   map[string]*entity.Chat
	created *entity.Chat
}

func (r *fakeChatRepo) Create(ctx context.Context, chat entity.Chat) (*entity.Chat, error) {
	r.created = &chat
	return &chat, nil
}

func (r *fakeChatRepo) Get(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	chat, ok := r.chats[chatID]
	if !ok || chat.UserID != userID {
		return nil, entity.ErrChatNotFound
	}
	copied := *chat
	return &copied, nil
}

func (r *fakeChatRepo) List(ctx context.Context, userID string) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, chat := range r.chats {
		if chat.UserID == userID {
			out = append(out, chat)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, userID, chatID string) error {
	chat, ok := r.chats[chatID]
	if !ok || chat.UserID != userID {
		return entity.ErrChatNotFound
	}
	delete(r.chats, chatID)
	return nil
}

type fakeQuestionRepo struct {
	questions []*entity.Question
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question entity.Question) (*entity.Question, error) {
	return &question, nil
}

func (r *fakeQuestionRepo) SetAnswer(ctx context.Context, questionID, answer string, segmentIDs []string) error {
	return nil
}

func (r *fakeQuestionRepo) Get(ctx context.Context, userID, questionID string) (*entity.Question, error) {
	return nil, entity.ErrQuestionNotFound
}

func (r *fakeQuestionRepo) ListByChat(ctx context.Context, userID, chatID string) ([]*entity.Question, error) {
	return r.questions, nil
}

func (r *fakeQuestionRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Question, error) {
	return r.questions, nil
}

func newTestUsecase(chatRepo *fakeChatRepo, questionRepo *fakeQuestionRepo) *ChatUsecase {
	return NewUsecase(chatRepo, questionRepo, formatter.NewFactory(), zap.NewNop())
}

func TestCreateChatTrimsTitle(t *testing.T) {
	chatRepo := &fakeChatRepo{chats: map[string]*entity.Chat{}}
	uc := newTestUsecase(chatRepo, &fakeQuestionRepo{})

	chat, err := uc.CreateChat(context.Background(), testUserID, &entity.CreateChatRequest{Title: "  contracts  "})
	require.NoError(t, err)

	assert.Equal(t, "contracts", chat.Title)
	assert.Equal(t, testUserID, chat.UserID)
	assert.NotEmpty(t, chat.ID)
}

func TestCreateChatDefaultsBlankTitle(t *testing.T) {
	uc := newTestUsecase(&fakeChatRepo{chats: map[string]*entity.Chat{}}, &fakeQuestionRepo{})

	chat, err := uc.CreateChat(context.Background(), testUserID, &entity.CreateChatRequest{Title: "   "})
	require.NoError(t, err)
	assert.Equal(t, "New Chat", chat.Title)
}

func TestGetChatAttachesQuestions(t *testing.T) {
	chatRepo := &fakeChatRepo{chats: map[string]*entity.Chat{
		testChatID: {ID: testChatID, UserID: testUserID, Title: "contracts"},
	}}
	questionRepo := &fakeQuestionRepo{questions: []*entity.Question{
		{ID: "q1", ChatID: testChatID, Query: "what is the term?", Answer: "Two years."},
	}}
	uc := newTestUsecase(chatRepo, questionRepo)

	chat, err := uc.GetChat(context.Background(), testUserID, testChatID)
	require.NoError(t, err)
	require.Len(t, chat.Questions, 1)
	assert.Equal(t, "what is the term?", chat.Questions[0].Query)
}

func TestGetChatForeignOwner(t *testing.T) {
	chatRepo := &fakeChatRepo{chats: map[string]*entity.Chat{
		testChatID: {ID: testChatID, UserID: "33333333-3333-3333-3333-333333333333", Title: "secret"},
	}}
	uc := newTestUsecase(chatRepo, &fakeQuestionRepo{})

	_, err := uc.GetChat(context.Background(), testUserID, testChatID)
	assert.ErrorIs(t, err, entity.ErrChatNotFound)
}

func TestExportChatMarkdown(t *testing.T) {
	chatRepo := &fakeChatRepo{chats: map[string]*entity.Chat{
		testChatID: {ID: testChatID, UserID: testUserID, Title: "contracts: 2026"},
	}}
	questionRepo := &fakeQuestionRepo{questions: []*entity.Question{
		{ID: "q1", ChatID: testChatID, Query: "what is the term?", Answer: "Two years."},
	}}
	uc := newTestUsecase(chatRepo, questionRepo)

	export, err := uc.ExportChat(context.Background(), testUserID, testChatID, entity.FormatMarkdown)
	require.NoError(t, err)

	assert.Equal(t, "text/markdown; charset=utf-8", export.ContentType)
	assert.Equal(t, "contracts- 2026.md", export.FileName)
	assert.Contains(t, string(export.Data), "what is the term?")
	assert.Contains(t, string(export.Data), "Two years.")
}

func TestExportChatUnsupportedFormat(t *testing.T) {
	uc := newTestUsecase(&fakeChatRepo{chats: map[string]*entity.Chat{}}, &fakeQuestionRepo{})

	_, err := uc.ExportChat(context.Background(), testUserID, testChatID, entity.ExportFormat("csv"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}
