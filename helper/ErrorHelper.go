package helper

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsNotFound reports whether a store read failed because the document
// does not exist, as opposed to a store error. Handlers map the former
// to 404 and everything else to 500.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
