// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_unit_error",
			code:    errors.ErrUnknownUnit,
			message: "unknown unit \"xyz\"",
			wantStr: "[UNKNOWN_UNIT] unknown unit \"xyz\"",
		},
		{
			name:    "syntax_error",
			code:    errors.ErrUnitSyntax,
			message: "unexpected '/'",
			wantStr: "[UNIT_SYNTAX] unexpected '/'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrDuplicateUnit, "unit %q already registered with scale %g", "mi", 1609.344)
	assert.Equal(t, "unit \"mi\" already registered with scale 1609.344", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load config")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] cannot load config: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestDimensionMismatch(t *testing.T) {
	err := errors.DimensionMismatch("add", "L", "T")

	assert.Equal(t, errors.ErrDimensionMismatch, err.Code)
	assert.Contains(t, err.Error(), "expected L")
	assert.Contains(t, err.Error(), "got T")
	assert.Equal(t, "L", err.Details["expected"])
	assert.Equal(t, "T", err.Details["actual"])
	assert.Equal(t, "add", err.Details["operation"])
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"symbol": "km",
		"prefix": "k",
		"scale":  1000.0,
	}

	err := errors.New(errors.ErrUnknownUnit, "unknown").WithDetails(details)
	for k, v := range details {
		assert.Equal(t, v, err.Details[k], k)
	}

	var zero errors.PhysqError
	zero.WithDetail("k", 1)
	assert.Equal(t, 1, zero.Details["k"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownUnit, "error 1")
	err2 := errors.New(errors.ErrUnknownUnit, "error 2")
	err3 := errors.New(errors.ErrUnitSyntax, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(fmt.Errorf("context: %w", err1), err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrDuplicateUnit, "dup"), errors.ErrDuplicateUnit, true},
		{"different_code", errors.New(errors.ErrDuplicateUnit, "dup"), errors.ErrInternal, false},
		{"wrapped_with_fmt", fmt.Errorf("outer: %w", errors.New(errors.ErrShapeMismatch, "len")), errors.ErrShapeMismatch, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	err := errors.New(errors.ErrNotComparable, "vectors").WithDetail("len", 3)
	assert.Equal(t, errors.ErrNotComparable, errors.GetErrorCode(err))
	assert.Equal(t, 3, errors.GetErrorDetails(err)["len"])
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse units.toml")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load config")

	require.True(t, errors.IsErrorCode(loadErr, errors.ErrConfigLoad))

	var middle *errors.PhysqError
	require.True(t, stderrors.As(loadErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrConfigParse, middle.Code)
	assert.True(t, stderrors.Is(loadErr, rootCause))
}
