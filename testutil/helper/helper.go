// Package helper provides shared test arrangement helpers.
package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// GivenUniqueID supplies a fresh time-ordered UUID for test arrangement.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id
}
