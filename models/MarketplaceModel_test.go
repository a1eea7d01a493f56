package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestPatchSetFieldsUsesPresenceNotTruthiness(t *testing.T) {
	patch := MarketplaceItemPatch{
		Price:  floatPtr(0),
		Status: strPtr(StatusSold),
	}

	require.NoError(t, patch.Validate())
	set := patch.SetFields()

	// a zero price is still an update
	assert.Equal(t, bson.M{"price": float64(0), "status": StatusSold}, set)
}

func TestPatchSetFieldsSkipsAbsentFields(t *testing.T) {
	set := MarketplaceItemPatch{}.SetFields()

	assert.Empty(t, set)
}

func TestPatchValidateRejectsBadEnums(t *testing.T) {
	assert.Error(t, MarketplaceItemPatch{Category: strPtr("vehicle")}.Validate())
	assert.Error(t, MarketplaceItemPatch{Condition: strPtr("broken")}.Validate())
	assert.Error(t, MarketplaceItemPatch{Status: strPtr("pending")}.Validate())
	assert.Error(t, MarketplaceItemPatch{Price: floatPtr(-1)}.Validate())
}

func TestPatchValidateAcceptsFullPatch(t *testing.T) {
	patch := MarketplaceItemPatch{
		Title:       strPtr("Used calculus textbook"),
		Description: strPtr("Light wear"),
		Category:    strPtr("book"),
		Price:       floatPtr(250),
		Condition:   strPtr("good"),
		Status:      strPtr(StatusReserved),
	}

	require.NoError(t, patch.Validate())
	assert.Len(t, patch.SetFields(), 6)
}
