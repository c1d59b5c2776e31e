package document

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/chunker"
)

const docTestUserID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

type fakeDocumentRepo struct {
	createdDoc      *entity.Document
	createdSegments []entity.Segment
	createErr       error
	documents       map[string]*entity.Document
	deleted         []string
}

func (f *fakeDocumentRepo) CreateWithSegments(ctx context.Context, document entity.Document, segments []entity.Segment) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdDoc = &document
	f.createdSegments = segments
	document.SegmentCount = len(segments)
	return &document, nil
}

func (f *fakeDocumentRepo) Get(ctx context.Context, userID, documentID string) (*entity.Document, error) {
	doc, ok := f.documents[documentID]
	if !ok || doc.UserID != userID {
		return nil, entity.ErrDocumentNotFound
	}
	return doc, nil
}

func (f *fakeDocumentRepo) List(ctx context.Context, userID string) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, userID, documentID string) error {
	if _, err := f.Get(ctx, userID, documentID); err != nil {
		return err
	}
	f.deleted = append(f.deleted, documentID)
	return nil
}

type fakeStorage struct {
	uploads []string
	deletes []string
}

func (f *fakeStorage) Upload(ctx context.Context, documentID, filename string, data io.Reader) (string, error) {
	path := documentID + "/" + filename
	f.uploads = append(f.uploads, path)
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeStorage) Delete(ctx context.Context, storagePath string) error {
	f.deletes = append(f.deletes, storagePath)
	return nil
}

type countingEmbedder struct {
	calls int
	err   error
}

func (e *countingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	return []float64{1, 0, 0}, nil
}

func newDocUsecase(repo *fakeDocumentRepo, store *fakeStorage, embedder Embedder) *DocumentUsecase {
	return NewUsecase(repo, store, embedder, chunker.New(300, 40), 1024, zap.NewNop())
}

func TestUploadHappyPath(t *testing.T) {
	repo := &fakeDocumentRepo{}
	store := &fakeStorage{}
	embedder := &countingEmbedder{}
	uc := newDocUsecase(repo, store, embedder)

	text := "This document describes the architecture of the system in enough words to pass the length threshold."
	doc, err := uc.Upload(context.Background(), docTestUserID, "arch.txt", "text/plain", []byte(text))
	require.NoError(t, err)

	assert.Equal(t, entity.DocumentTypeText, doc.FileType)
	assert.Equal(t, 1, doc.SegmentCount)
	assert.Equal(t, 1, embedder.calls)
	require.Len(t, repo.createdSegments, 1)
	assert.Equal(t, 0, repo.createdSegments[0].Ordinal)
	// Embeddings are normalized before persisting.
	assert.InDelta(t, 1.0, repo.createdSegments[0].Embedding[0], 1e-9)
	assert.Len(t, store.uploads, 1)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	uc := newDocUsecase(&fakeDocumentRepo{}, &fakeStorage{}, &countingEmbedder{})

	_, err := uc.Upload(context.Background(), docTestUserID, "big.txt", "text/plain", make([]byte, 2048))
	assert.ErrorIs(t, err, entity.ErrFileTooLarge)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	uc := newDocUsecase(&fakeDocumentRepo{}, &fakeStorage{}, &countingEmbedder{})

	_, err := uc.Upload(context.Background(), docTestUserID, "cat.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedFileType)
}

func TestUploadEmbeddingFailureLeavesNothingBehind(t *testing.T) {
	repo := &fakeDocumentRepo{}
	store := &fakeStorage{}
	uc := newDocUsecase(repo, store, &countingEmbedder{err: entity.ErrEmbeddingUnavailable})

	text := "Another body of text long enough to be segmented and embedded by the pipeline."
	_, err := uc.Upload(context.Background(), docTestUserID, "doc.txt", "text/plain", []byte(text))
	assert.ErrorIs(t, err, entity.ErrEmbeddingUnavailable)

	assert.Nil(t, repo.createdDoc)
	assert.Empty(t, store.uploads)
}

func TestUploadPersistFailureCleansUpStorage(t *testing.T) {
	repo := &fakeDocumentRepo{createErr: errors.New("db down")}
	store := &fakeStorage{}
	uc := newDocUsecase(repo, store, &countingEmbedder{})

	text := "Persisting this document will fail and the stored blob must be removed again."
	_, err := uc.Upload(context.Background(), docTestUserID, "doc.txt", "text/plain", []byte(text))
	require.Error(t, err)

	require.Len(t, store.uploads, 1)
	assert.Equal(t, store.uploads, store.deletes)
}

func TestUploadEmptyTextYieldsNoSegments(t *testing.T) {
	repo := &fakeDocumentRepo{}
	store := &fakeStorage{}
	embedder := &countingEmbedder{}
	uc := newDocUsecase(repo, store, embedder)

	doc, err := uc.Upload(context.Background(), docTestUserID, "tiny.txt", "text/plain", []byte("too short"))
	require.NoError(t, err)

	assert.Equal(t, 0, doc.SegmentCount)
	assert.Equal(t, 0, embedder.calls)
}

func TestDeleteDocumentRemovesStoredFile(t *testing.T) {
	repo := &fakeDocumentRepo{documents: map[string]*entity.Document{
		"doc-1": {ID: "doc-1", UserID: docTestUserID, StoragePath: "do/doc-1_a.txt"},
	}}
	store := &fakeStorage{}
	uc := newDocUsecase(repo, store, &countingEmbedder{})

	require.NoError(t, uc.DeleteDocument(context.Background(), docTestUserID, "doc-1"))
	assert.Equal(t, []string{"doc-1"}, repo.deleted)
	assert.Equal(t, []string{"do/doc-1_a.txt"}, store.deletes)
}

func TestDeleteDocumentForeignOwnerRejected(t *testing.T) {
	repo := &fakeDocumentRepo{documents: map[string]*entity.Document{
		"doc-1": {ID: "doc-1", UserID: docTestUserID},
	}}
	uc := newDocUsecase(repo, &fakeStorage{}, &countingEmbedder{})

	err := uc.DeleteDocument(context.Background(), "intruder", "doc-1")
	assert.ErrorIs(t, err, entity.ErrDocumentNotFound)
	assert.Empty(t, repo.deleted)
}
