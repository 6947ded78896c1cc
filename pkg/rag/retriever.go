package rag

import (
	"context"
	"fmt"
	"time"

	"luma-companion-be/internal/pkg/logger"
	"luma-companion-be/pkg/embedding"
	"luma-companion-be/pkg/vectorstore"

	"github.com/google/uuid"
)

// Retriever ties the embedding provider to the per-user vector collection.
// The vector index is a rebuildable cache: every failure here degrades to
// "no retrieval context" instead of failing the chat turn.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	store    vectorstore.Store
	log      logger.ILogger
}

func NewRetriever(embedder embedding.EmbeddingProvider, store vectorstore.Store, log logger.ILogger) *Retriever {
	return &Retriever{
		embedder: embedder,
		store:    store,
		log:      log,
	}
}

// Retrieve returns up to k documents from the user's history collection,
// most similar first. Returns nil when embedding fails or nothing matches.
func (r *Retriever) Retrieve(ctx context.Context, userId uuid.UUID, message string, k int) []string {
	col, err := r.store.GetOrCreateCollection(ctx, vectorstore.UserHistoryCollection(userId), embedding.Dimensions)
	if err != nil {
		r.log.Warn("rag", "failed to open user collection, continuing without context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil
	}

	vec, err := r.embedder.Generate(message, embedding.TaskRetrievalQuery)
	if err != nil {
		r.log.Warn("rag", "query embedding failed, continuing without context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil
	}

	results, err := r.store.Query(ctx, col, vec, k)
	if err != nil {
		r.log.Warn("rag", "vector query failed, continuing without context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil
	}

	docs := make([]string, 0, len(results))
	for _, res := range results {
		docs = append(docs, res.Document)
	}
	return docs
}

// SaveExchange writes the user/model exchange back into the user's
// collection so future turns can retrieve it.
func (r *Retriever) SaveExchange(ctx context.Context, userId uuid.UUID, userMessage, reply string) error {
	col, err := r.store.GetOrCreateCollection(ctx, vectorstore.UserHistoryCollection(userId), embedding.Dimensions)
	if err != nil {
		return err
	}

	document := fmt.Sprintf("User: %s\nModel: %s", userMessage, reply)

	vec, err := r.embedder.Generate(document, embedding.TaskRetrievalDocument)
	if err != nil {
		return err
	}

	recordId := fmt.Sprintf("msg-%d", time.Now().UnixMilli())
	return r.store.Upsert(ctx, col, recordId, vec, document)
}

// SaveDocument indexes an arbitrary document under a caller-chosen id,
// used by the journal embedding consumer.
func (r *Retriever) SaveDocument(ctx context.Context, userId uuid.UUID, recordId, document string) error {
	col, err := r.store.GetOrCreateCollection(ctx, vectorstore.UserHistoryCollection(userId), embedding.Dimensions)
	if err != nil {
		return err
	}

	vec, err := r.embedder.Generate(document, embedding.TaskRetrievalDocument)
	if err != nil {
		return err
	}

	return r.store.Upsert(ctx, col, recordId, vec, document)
}
