package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mode  string  `validate:"required"`
	Speed float64 `validate:"gte=0"`
}

func TestValidate_FieldErrors(t *testing.T) {
	err := Validate(&sample{Speed: -1})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "required", fields["sample.Mode"])
	assert.Equal(t, "gte", fields["sample.Speed"])

	assert.NoError(t, Validate(&sample{Mode: "walking", Speed: 1.4}))
	assert.Nil(t, FieldErrors(errors.New("boom")))
}
