package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	boom := errors.New("boom")

	applied := Applied("created")
	assert.Equal(t, StatusSucceeded, applied.Status)
	assert.True(t, applied.Changed)
	assert.NoError(t, applied.Err)

	unchanged := Unchanged("already there")
	assert.Equal(t, StatusSucceeded, unchanged.Status)
	assert.False(t, unchanged.Changed)

	skipped := Skip(boom, "leaving it alone")
	assert.Equal(t, StatusSkipped, skipped.Status)
	assert.False(t, skipped.Changed)
	assert.Equal(t, boom, skipped.Err)

	failed := Failure(boom, "broke")
	assert.Equal(t, StatusFailed, failed.Status)
	assert.False(t, failed.Changed)
	assert.Equal(t, boom, failed.Err)
}
