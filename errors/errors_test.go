package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotEmpty, "directory not empty")

	require.NotNil(t, err)
	require.Equal(t, CodeNotEmpty, err.Code())
	require.Equal(t, "directory not empty", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[DIRECTORY_NOT_EMPTY] directory not empty", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidName, "name %q is not a bare segment", "a/b")
	require.Equal(t, `name "a/b" is not a bare segment`, err.Message())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidName,
		CodeLineage,
		CodePattern,
		CodeIO,
		CodeNotFound,
		CodeAlreadyExists,
		CodeNotEmpty,
		CodeInternal,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
		})
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	err := Wrap(fs.ErrNotExist, CodeNotFound, "stat /missing")

	require.Equal(t, CodeNotFound, err.Code())
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "[NOT_FOUND] stat /missing: file does not exist", err.Error())
}

func TestWrap_NilReturnsNil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "ignored"))
	require.Nil(t, Wrapf(nil, CodeIO, "ignored %d", 1))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New(CodeIO, "disk hiccup")
	require.Equal(t, ClassificationRetryable, inner.Classification())

	// Wrapping under a permanent code keeps the retryable classification.
	outer := Wrap(inner, CodeInternal, "operation failed")
	require.Equal(t, ClassificationRetryable, outer.Classification())
	require.Equal(t, CodeInternal, outer.Code())
}

func TestWithContext(t *testing.T) {
	err := New(CodeLineage, "parent is not a temp boundary")
	err = WithContext(err, "path", "/data")
	err = WithContext(err, "parent", "/")

	ctx := err.Context()
	require.Equal(t, "/data", ctx["path"])
	require.Equal(t, "/", ctx["parent"])
	require.Equal(t, CodeLineage, err.Code())

	// The returned map is a defensive copy.
	ctx["path"] = "mutated"
	require.Equal(t, "/data", err.Context()["path"])
}

func TestWithContext_ConvertsPlainError(t *testing.T) {
	err := WithContext(fs.ErrPermission, "path", "/secret")
	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "/secret", err.Context()["path"])
}

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeNotEmpty, GetCode(New(CodeNotEmpty, "x")))
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, CodeUnknown, GetCode(fs.ErrInvalid))

	// The outermost code in the chain wins.
	wrapped := Wrap(New(CodeNotFound, "inner"), CodeIO, "outer")
	require.Equal(t, CodeIO, GetCode(wrapped))
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(New(CodeIO, "transient")))
	require.False(t, IsRetryable(New(CodeLineage, "permanent")))
	require.False(t, IsRetryable(nil))
	require.False(t, IsRetryable(fs.ErrInvalid))
}

func TestAs_FindsPlatformError(t *testing.T) {
	var platformErr PlatformError
	err := Wrap(fs.ErrNotExist, CodeNotFound, "stat failed")
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeNotFound, platformErr.Code())
}
