package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"luma-companion-be/internal/model"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection is a handle to a named vector collection.
type Collection struct {
	Id         uuid.UUID
	Name       string
	Dimensions int
}

// QueryResult is one nearest neighbor, most similar first.
type QueryResult struct {
	RecordId   string
	Document   string
	Similarity float64
}

// Store is the vector index gateway. One collection per user keeps
// retrieval strictly scoped to that user's history.
type Store interface {
	GetOrCreateCollection(ctx context.Context, name string, dimensions int) (*Collection, error)
	Query(ctx context.Context, col *Collection, vec []float32, k int) ([]QueryResult, error)
	Upsert(ctx context.Context, col *Collection, recordId string, vec []float32, document string) error
}

// UserHistoryCollection returns the per-user collection name.
func UserHistoryCollection(userId uuid.UUID) string {
	return fmt.Sprintf("user-%s-history", userId)
}

type PgVectorStore struct {
	db      *gorm.DB
	handles *cache.Cache
}

func NewPgVectorStore(db *gorm.DB) Store {
	return &PgVectorStore{
		db:      db,
		handles: cache.New(30*time.Minute, 10*time.Minute),
	}
}

func (s *PgVectorStore) GetOrCreateCollection(ctx context.Context, name string, dimensions int) (*Collection, error) {
	if cached, found := s.handles.Get(name); found {
		return cached.(*Collection), nil
	}

	var m model.VectorCollection
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.VectorCollection{Name: name, Dimensions: dimensions}
		createErr := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&m).Error
		if createErr != nil {
			return nil, createErr
		}
		// A concurrent creator may have won; read the surviving row.
		err = s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	}
	if err != nil {
		return nil, err
	}

	col := &Collection{Id: m.Id, Name: m.Name, Dimensions: m.Dimensions}
	s.handles.Set(name, col, cache.DefaultExpiration)
	return col, nil
}

func (s *PgVectorStore) Query(ctx context.Context, col *Collection, vec []float32, k int) ([]QueryResult, error) {
	if col == nil {
		return nil, fmt.Errorf("nil collection handle")
	}
	if len(vec) == 0 {
		return nil, nil
	}
	if len(vec) != col.Dimensions {
		return nil, fmt.Errorf("vector has %d dimensions, collection %q expects %d", len(vec), col.Name, col.Dimensions)
	}

	var results []QueryResult
	err := s.nearestQuery(ctx, col, vec, k).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// nearestQuery orders on the similarity alias. Ordering by a raw
// gorm.Expr is dropped by DB.Order, which only accepts strings and
// clause.OrderBy values.
func (s *PgVectorStore) nearestQuery(ctx context.Context, col *Collection, vec []float32, k int) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.VectorRecord{}).
		Select("record_id, document, 1 - (embedding <=> ?) AS similarity", pgvector.NewVector(vec)).
		Where("collection_id = ?", col.Id).
		Order("similarity DESC").
		Limit(k)
}

func (s *PgVectorStore) Upsert(ctx context.Context, col *Collection, recordId string, vec []float32, document string) error {
	if col == nil {
		return fmt.Errorf("nil collection handle")
	}
	if len(vec) != col.Dimensions {
		return fmt.Errorf("vector has %d dimensions, collection %q expects %d", len(vec), col.Name, col.Dimensions)
	}

	record := model.VectorRecord{
		CollectionId: col.Id,
		RecordId:     recordId,
		Document:     document,
		Embedding:    pgvector.NewVector(vec),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection_id"}, {Name: "record_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "embedding", "updated_at"}),
		}).
		Create(&record).Error
}
