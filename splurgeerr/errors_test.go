package splurgeerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(ErrTypeParameter, "bad value")
	assert.Equal(t, "[ParameterError] bad value", err.Error())
}

func TestWrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrTypeFile, "write failed", cause)
	assert.Contains(t, err.Error(), "write failed")
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWithContext(t *testing.T) {
	err := New(ErrTypeRange, "out of bounds").WithContext("lowerBound", 0).WithContext("upperBound", 10)
	assert.Contains(t, err.Error(), "lowerBound=0")
	assert.Contains(t, err.Error(), "upperBound=10")
}

func TestParameter_IncludesReceivedValue(t *testing.T) {
	err := Parameter("delimiter must not be empty", "")
	assert.True(t, IsParameterError(err))
	assert.Equal(t, "", err.Context["received"])
	assert.Equal(t, "string", err.Context["receivedType"])
}

func TestRange_IncludesBounds(t *testing.T) {
	err := Range("chunk_size must be at least 100", 100, nil)
	assert.True(t, IsRangeError(err))
	assert.Equal(t, 100, err.Context["lowerBound"])
}

func TestFile_IncludesPath(t *testing.T) {
	err := File("failed to open", "/tmp/data.csv", errors.New("permission denied"))
	assert.True(t, IsFileError(err))
	assert.Equal(t, "/tmp/data.csv", err.Context["path"])
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		err     error
		checker func(error) bool
	}{
		{New(ErrTypeParameter, "x"), IsParameterError},
		{New(ErrTypeRange, "x"), IsRangeError},
		{New(ErrTypeFormat, "x"), IsFormatError},
		{New(ErrTypeValidation, "x"), IsValidationError},
		{New(ErrTypeFile, "x"), IsFileError},
	}
	for _, tt := range tests {
		assert.True(t, tt.checker(tt.err))
	}
	assert.False(t, IsParameterError(nil))
	assert.False(t, IsParameterError(errors.New("plain error")))
}
