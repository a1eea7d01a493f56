package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

func TestCanModify(t *testing.T) {
	ownerID := primitive.NewObjectID()

	tests := []struct {
		name string
		user models.User
		want bool
	}{
		{
			name: "owner may modify",
			user: models.User{ID: ownerID, Role: models.RoleStudent},
			want: true,
		},
		{
			name: "other student may not",
			user: models.User{ID: primitive.NewObjectID(), Role: models.RoleStudent},
			want: false,
		},
		{
			name: "admin may modify anything",
			user: models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModify(tt.user, ownerID))
		})
	}
}
