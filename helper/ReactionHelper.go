package helper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

// HasUserRef reports whether userID already appears in refs.
func HasUserRef(refs []models.UserRef, userID primitive.ObjectID) bool {
	for _, ref := range refs {
		if ref.User == userID {
			return true
		}
	}
	return false
}

// AddUserRef prepends userID so the newest reaction comes first.
// Adding an existing member is a no-op.
func AddUserRef(refs []models.UserRef, userID primitive.ObjectID) []models.UserRef {
	if HasUserRef(refs, userID) {
		return refs
	}
	return append([]models.UserRef{{User: userID}}, refs...)
}

// RemoveUserRef removes userID from refs. Removing an absent member
// is a no-op.
func RemoveUserRef(refs []models.UserRef, userID primitive.ObjectID) []models.UserRef {
	out := make([]models.UserRef, 0, len(refs))
	for _, ref := range refs {
		if ref.User != userID {
			out = append(out, ref)
		}
	}
	return out
}

// ToggleUserRef removes userID when present, otherwise appends it.
// Two calls with the same user restore the original membership.
// Used for event attendees.
func ToggleUserRef(refs []models.UserRef, userID primitive.ObjectID) []models.UserRef {
	if HasUserRef(refs, userID) {
		return RemoveUserRef(refs, userID)
	}
	return append(refs, models.UserRef{User: userID})
}

// ToggleUserRefFront is ToggleUserRef with newest-first insertion.
// Used for comment upvotes.
func ToggleUserRefFront(refs []models.UserRef, userID primitive.ObjectID) []models.UserRef {
	if HasUserRef(refs, userID) {
		return RemoveUserRef(refs, userID)
	}
	return append([]models.UserRef{{User: userID}}, refs...)
}
