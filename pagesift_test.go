package pagesift_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagesift.Errorf(pagesift.ENOTFOUND, "extraction %q not found", "test")

	assert.Equal(t, pagesift.ENOTFOUND, pagesift.ErrorCode(err))
	assert.Equal(t, "extraction \"test\" not found", pagesift.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagesift.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagesift.EINTERNAL, pagesift.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagesift.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", pagesift.ErrorMessage(errors.New("boom")))
}
