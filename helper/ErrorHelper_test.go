package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(mongo.ErrNoDocuments))
	assert.True(t, IsNotFound(fmt.Errorf("decode: %w", mongo.ErrNoDocuments)))

	// store failures are not "not found"
	assert.False(t, IsNotFound(errors.New("connection reset")))
	assert.False(t, IsNotFound(nil))
}
