package docprep_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docprep"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docprep.Errorf(docprep.ENOTFOUND, "index %q not found", "out")

	assert.Equal(t, docprep.ENOTFOUND, docprep.ErrorCode(err))
	assert.Equal(t, "index \"out\" not found", docprep.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docprep.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docprep.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("classify: %w", docprep.Errorf(docprep.EUNAVAILABLE, "retries exhausted"))

	assert.Equal(t, docprep.EUNAVAILABLE, docprep.ErrorCode(err))
	assert.Equal(t, "retries exhausted", docprep.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docprep.EINTERNAL, docprep.ErrorCode(err))
	assert.Equal(t, "Internal error.", docprep.ErrorMessage(err))
}
