package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

func TestToggleUserRefInsertsWhenAbsent(t *testing.T) {
	userID := primitive.NewObjectID()

	refs := ToggleUserRef([]models.UserRef{}, userID)

	require.Len(t, refs, 1)
	assert.Equal(t, userID, refs[0].User)
}

func TestToggleUserRefTwiceRestoresOriginal(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	original := []models.UserRef{{User: other}}

	refs := ToggleUserRef(original, userID)
	require.Len(t, refs, 2)

	refs = ToggleUserRef(refs, userID)
	assert.Equal(t, original, refs)
}

func TestToggleUserRefAppendsAtTail(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	refs := ToggleUserRef([]models.UserRef{}, first)
	refs = ToggleUserRef(refs, second)

	require.Len(t, refs, 2)
	assert.Equal(t, first, refs[0].User)
	assert.Equal(t, second, refs[1].User)
}

func TestToggleUserRefFrontPrependsNewest(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	refs := ToggleUserRefFront([]models.UserRef{}, first)
	refs = ToggleUserRefFront(refs, second)

	require.Len(t, refs, 2)
	assert.Equal(t, second, refs[0].User)
	assert.Equal(t, first, refs[1].User)
}

func TestToggleUserRefFrontSelfInverse(t *testing.T) {
	userID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	original := []models.UserRef{{User: other}}

	refs := ToggleUserRefFront(original, userID)
	refs = ToggleUserRefFront(refs, userID)

	assert.Equal(t, original, refs)
}

func TestAddUserRefIsIdempotent(t *testing.T) {
	userID := primitive.NewObjectID()

	refs := AddUserRef([]models.UserRef{}, userID)
	refs = AddUserRef(refs, userID)

	require.Len(t, refs, 1)
	assert.Equal(t, userID, refs[0].User)
}

func TestAddUserRefPrependsNewest(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	refs := AddUserRef([]models.UserRef{}, first)
	refs = AddUserRef(refs, second)

	require.Len(t, refs, 2)
	assert.Equal(t, second, refs[0].User)
}

func TestRemoveUserRefAbsentMemberIsNoop(t *testing.T) {
	member := primitive.NewObjectID()
	refs := []models.UserRef{{User: member}}

	refs = RemoveUserRef(refs, primitive.NewObjectID())

	require.Len(t, refs, 1)
	assert.Equal(t, member, refs[0].User)
}

func TestRemoveUserRefRemovesMember(t *testing.T) {
	member := primitive.NewObjectID()
	keep := primitive.NewObjectID()
	refs := []models.UserRef{{User: member}, {User: keep}}

	refs = RemoveUserRef(refs, member)

	require.Len(t, refs, 1)
	assert.Equal(t, keep, refs[0].User)
}

func TestMembershipNeverDuplicated(t *testing.T) {
	userID := primitive.NewObjectID()
	refs := []models.UserRef{{User: userID}}

	assert.Len(t, AddUserRef(refs, userID), 1)
	assert.True(t, HasUserRef(refs, userID))
	assert.False(t, HasUserRef(refs, primitive.NewObjectID()))
}
