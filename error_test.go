package ucd_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/ucd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := ucd.Errorf(ucd.ENOTFOUND, "codepoint %q not found", "U+FFFF")

	assert.Equal(t, ucd.ENOTFOUND, ucd.ErrorCode(err))
	assert.Equal(t, "codepoint \"U+FFFF\" not found", ucd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ucd.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ucd.EINTERNAL, ucd.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ucd.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", ucd.ErrorMessage(errors.New("boom")))
}
