package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sizeRequest struct {
	Width  float64 `validate:"gt=0"`
	Height float64 `validate:"gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sizeRequest{Width: 800, Height: 600}))
	assert.Error(t, v.Validate(&sizeRequest{Width: 800}))
}
