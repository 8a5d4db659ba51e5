package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/opalloc/pkg/errors"
)

func TestNewCarriesTypeAndStack(t *testing.T) {
	err := errors.New(errors.ErrorTypeInvalidHandle, "pool not initialized")

	assert.Equal(t, "invalid_handle: pool not initialized", err.Error())
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidHandle))
	assert.False(t, errors.IsType(err, errors.ErrorTypeAllocationFailure))
	require.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Stack[0].Function, "TestNewCarriesTypeAndStack")
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrorTypeConfig, "object size must be positive, got %d", -3)
	assert.Equal(t, "config: object size must be positive, got -3", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("mmap failed")
	err := errors.Wrap(cause, errors.ErrorTypeAllocationFailure, "could not allocate chunk")

	assert.Equal(t, "allocation_failure: could not allocate chunk: mmap failed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.IsType(err, errors.ErrorTypeAllocationFailure))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrorTypeAllocationFailure, "ignored"))
}

func TestWrapPreservesExistingStack(t *testing.T) {
	inner := errors.New(errors.ErrorTypeAllocationFailure, "slot allocation failed")
	outer := errors.Wrap(inner, errors.ErrorTypeAllocationFailure, "acquire failed")

	assert.Equal(t, inner.Stack, outer.Stack)

	var e *errors.Error
	require.True(t, stderrors.As(outer, &e))
	assert.ErrorIs(t, outer, inner)
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrorTypeConfig, "bad profile").
		WithDetail("profile", "sessions").
		WithDetail("field", "initial_count")

	assert.Equal(t, "sessions", err.Details["profile"])
	assert.Equal(t, "initial_count", err.Details["field"])
}

func TestIsTypeOnForeignError(t *testing.T) {
	assert.False(t, errors.IsType(fmt.Errorf("plain"), errors.ErrorTypeConfig))
	assert.False(t, errors.IsType(nil, errors.ErrorTypeConfig))
}
