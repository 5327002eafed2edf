package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NewNotFoundError("Pet", "1")))
	assert.Equal(t, KindValidation, KindOf(NewValidationError("bad")))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("filter: %w", NewValidationError("bad"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestIsNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewNotFoundError("Pet", "9"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.Equal(t, "lookup: Pet with id 9 not found", err.Error())
}
