package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/ucd"
	main "github.com/fwojciec/ucd/cmd/ucd"
	"github.com/fwojciec/ucd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdLookup(t *testing.T) {
	t.Parallel()

	t.Run("prints the codepoint", func(t *testing.T) {
		t.Parallel()

		index := &mock.IndexService{
			FindCodePointByCodeFn: func(ctx context.Context, code rune) (*ucd.CodePoint, error) {
				require.Equal(t, rune(0x41), code)
				return &ucd.CodePoint{
					Code:     0x41,
					Name:     "LATIN CAPITAL LETTER A",
					Category: ucd.CategoryLu,
					Bidi:     ucd.BidiL,
					Decimal:  -1,
					Digit:    -1,
					Lower:    0x61,
				}, nil
			},
		}

		var stdout, stderr bytes.Buffer
		cmd := &main.LookupCmd{Code: "U+0041", DB: "test.db"}
		err := cmd.Run(newTestDeps(&stdout, &stderr, nil, index))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "U+0041 LATIN CAPITAL LETTER A")
		assert.Contains(t, stdout.String(), "category:  Lu")
		assert.Contains(t, stdout.String(), "lowercase: U+0061")
	})

	t.Run("invalid code", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		cmd := &main.LookupCmd{Code: "zzz", DB: "test.db"}
		err := cmd.Run(newTestDeps(&stdout, &stderr, nil, nil))
		require.Error(t, err)
		assert.Equal(t, ucd.EINVALID, ucd.ErrorCode(err))
	})

	t.Run("codepoint not found", func(t *testing.T) {
		t.Parallel()

		index := &mock.IndexService{
			FindCodePointByCodeFn: func(ctx context.Context, code rune) (*ucd.CodePoint, error) {
				return nil, ucd.Errorf(ucd.ENOTFOUND, "codepoint U+%04X not found in index", code)
			},
		}

		var stdout, stderr bytes.Buffer
		cmd := &main.LookupCmd{Code: "10FFFF", DB: "test.db"}
		err := cmd.Run(newTestDeps(&stdout, &stderr, nil, index))
		require.Error(t, err)
		assert.Equal(t, ucd.ENOTFOUND, ucd.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}
