package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected} {
		assert.True(t, ValidStatus(status), status)
	}

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("ghosted"))
	assert.False(t, ValidStatus("Applied")) // statuses are lowercase
}
