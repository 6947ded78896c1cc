package vectorstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestNearestQuerySQL(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	assert.NoError(t, err)

	store := NewPgVectorStore(db).(*PgVectorStore)
	col := &Collection{Id: uuid.New(), Name: "user-test-history", Dimensions: 3}

	var results []QueryResult
	tx := store.nearestQuery(context.Background(), col, []float32{1, 2, 3}, 5).Find(&results)
	assert.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "1 - (embedding <=> ?) AS similarity")
	assert.Contains(t, sql, "collection_id = ?")
	assert.Contains(t, sql, "ORDER BY similarity DESC")
	assert.Contains(t, sql, "LIMIT")
}
