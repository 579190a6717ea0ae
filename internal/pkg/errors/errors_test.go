package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	detailed := ErrProjectionGap.WithDetails(map[string]interface{}{"place": "2.3;48.8"})

	assert.True(t, stderrors.Is(detailed, ErrProjectionGap))
	assert.False(t, stderrors.Is(detailed, ErrInvalidMode))
	assert.Empty(t, ErrProjectionGap.Details, "sentinel must not be mutated")

	wrapped := fmt.Errorf("request 42: %w", ErrInvalidMode)
	assert.True(t, stderrors.Is(wrapped, ErrInvalidMode))
}

func TestAppError_Wrap(t *testing.T) {
	err := ErrDatabaseError.Wrap(io.ErrUnexpectedEOF)

	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, stderrors.Is(err, ErrDatabaseError))
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
	assert.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())

	var appErr *AppError
	assert.True(t, stderrors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, 500, appErr.StatusCode)
}
