package rag

import (
	"context"
	"errors"
	"testing"

	"luma-companion-be/pkg/embedding"
	"luma-companion-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Generate(text string, taskType string) ([]float32, error) {
	return f.vec, f.err
}

type fakeStore struct {
	collectionErr error
	queryErr      error
	results       []vectorstore.QueryResult

	upserted map[string]string
}

func (f *fakeStore) GetOrCreateCollection(ctx context.Context, name string, dimensions int) (*vectorstore.Collection, error) {
	if f.collectionErr != nil {
		return nil, f.collectionErr
	}
	return &vectorstore.Collection{Id: uuid.New(), Name: name, Dimensions: dimensions}, nil
}

func (f *fakeStore) Query(ctx context.Context, col *vectorstore.Collection, vec []float32, k int) ([]vectorstore.QueryResult, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.results, nil
}

func (f *fakeStore) Upsert(ctx context.Context, col *vectorstore.Collection, recordId string, vec []float32, document string) error {
	if f.upserted == nil {
		f.upserted = make(map[string]string)
	}
	f.upserted[recordId] = document
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestRetrieve(t *testing.T) {
	userId := uuid.New()
	vec := make([]float32, embedding.Dimensions)

	t.Run("returns documents most similar first", func(t *testing.T) {
		store := &fakeStore{results: []vectorstore.QueryResult{
			{RecordId: "msg-1", Document: "User: hi\nModel: hello", Similarity: 0.92},
			{RecordId: "msg-2", Document: "User: bye\nModel: take care", Similarity: 0.61},
		}}
		r := NewRetriever(&fakeEmbedder{vec: vec}, store, nopLogger{})

		docs := r.Retrieve(context.Background(), userId, "hi again", 5)
		assert.Equal(t, []string{"User: hi\nModel: hello", "User: bye\nModel: take care"}, docs)
	})

	t.Run("embedding failure degrades to no context", func(t *testing.T) {
		store := &fakeStore{results: []vectorstore.QueryResult{{Document: "never returned"}}}
		r := NewRetriever(&fakeEmbedder{err: errors.New("quota exceeded")}, store, nopLogger{})

		docs := r.Retrieve(context.Background(), userId, "hi", 5)
		assert.Nil(t, docs)
	})

	t.Run("collection failure degrades to no context", func(t *testing.T) {
		store := &fakeStore{collectionErr: errors.New("db down")}
		r := NewRetriever(&fakeEmbedder{vec: vec}, store, nopLogger{})

		docs := r.Retrieve(context.Background(), userId, "hi", 5)
		assert.Nil(t, docs)
	})

	t.Run("query failure degrades to no context", func(t *testing.T) {
		store := &fakeStore{queryErr: errors.New("timeout")}
		r := NewRetriever(&fakeEmbedder{vec: vec}, store, nopLogger{})

		docs := r.Retrieve(context.Background(), userId, "hi", 5)
		assert.Nil(t, docs)
	})
}

func TestSaveExchange(t *testing.T) {
	userId := uuid.New()
	vec := make([]float32, embedding.Dimensions)

	t.Run("stores the combined exchange document", func(t *testing.T) {
		store := &fakeStore{}
		r := NewRetriever(&fakeEmbedder{vec: vec}, store, nopLogger{})

		err := r.SaveExchange(context.Background(), userId, "I feel stuck", "That sounds hard. What feels most stuck right now?")
		assert.NoError(t, err)
		assert.Len(t, store.upserted, 1)
		for recordId, document := range store.upserted {
			assert.Regexp(t, `^msg-\d+$`, recordId)
			assert.Equal(t, "User: I feel stuck\nModel: That sounds hard. What feels most stuck right now?", document)
		}
	})

	t.Run("embedding failure is returned to the caller", func(t *testing.T) {
		store := &fakeStore{}
		r := NewRetriever(&fakeEmbedder{err: errors.New("quota exceeded")}, store, nopLogger{})

		err := r.SaveExchange(context.Background(), userId, "hi", "hello")
		assert.Error(t, err)
		assert.Empty(t, store.upserted)
	})
}

func TestSaveDocument(t *testing.T) {
	userId := uuid.New()
	vec := make([]float32, embedding.Dimensions)

	store := &fakeStore{}
	r := NewRetriever(&fakeEmbedder{vec: vec}, store, nopLogger{})

	err := r.SaveDocument(context.Background(), userId, "journal-abc", "Wrote about the week.")
	assert.NoError(t, err)
	assert.Equal(t, "Wrote about the week.", store.upserted["journal-abc"])
}
