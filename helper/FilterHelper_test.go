package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildResourceFilterEmptyFieldsMatchEverything(t *testing.T) {
	filter, err := BuildResourceFilter("", "", "", "")

	require.NoError(t, err)
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildResourceFilterOnlySuppliedFieldsConstrain(t *testing.T) {
	filter, err := BuildResourceFilter("Algorithms", "", "", "notes")

	require.NoError(t, err)
	assert.Equal(t, bson.M{"subject": "Algorithms", "resourceType": "notes"}, filter)
}

func TestBuildResourceFilterParsesSemester(t *testing.T) {
	filter, err := BuildResourceFilter("", "CSE", "5", "")

	require.NoError(t, err)
	assert.Equal(t, bson.M{"department": "CSE", "semester": 5}, filter)
}

func TestBuildResourceFilterRejectsBadSemester(t *testing.T) {
	_, err := BuildResourceFilter("", "", "fifth", "")

	assert.Error(t, err)
}
