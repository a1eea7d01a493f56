package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordDownloadIncrementsByOne(t *testing.T) {
	resource := Resource{Downloads: 3}

	resource.RecordDownload()

	assert.Equal(t, 4, resource.Downloads)
}

func TestRecordDownloadNSerializedCallsAddN(t *testing.T) {
	var resource Resource

	const n = 25
	previous := resource.Downloads
	for i := 0; i < n; i++ {
		resource.RecordDownload()
		// monotone: each call moves the counter up by exactly one
		assert.Equal(t, previous+1, resource.Downloads)
		previous = resource.Downloads
	}

	assert.Equal(t, n, resource.Downloads)
}
