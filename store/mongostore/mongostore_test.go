package mongostore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ppdb/store"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(mongo.ErrNoDocuments), store.ErrNotFound)
	assert.ErrorIs(t, wrapError(fmt.Errorf("find: %w", mongo.ErrNoDocuments)), store.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, wrapError(dup), store.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, wrapError(other))
}
