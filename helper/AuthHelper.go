package helper

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

// CanModify reports whether user may update or delete a document
// owned by ownerID. Only the owner and admins may.
func CanModify(user models.User, ownerID primitive.ObjectID) bool {
	return user.ID == ownerID || user.Role == models.RoleAdmin
}
