package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"csv-refine/internal/errors"
)

func TestCodedErrors(t *testing.T) {
	t.Run("new carries code and message", func(t *testing.T) {
		err := errors.New(errors.Parse, "bad header in %s", "orders.csv")
		assert.EqualError(t, err, "parse error: bad header in orders.csv")
		assert.Equal(t, errors.Parse, errors.CodeOf(err))
		assert.True(t, errors.Is(err, errors.Parse))
		assert.False(t, errors.Is(err, errors.IO))
	})
	t.Run("wrap preserves the cause", func(t *testing.T) {
		err := errors.Wrap(os.ErrNotExist, errors.IO, "writing %s", "out.csv")
		assert.Equal(t, errors.IO, errors.CodeOf(err))
		assert.True(t, stderrors.Is(err, os.ErrNotExist))
		assert.Contains(t, err.Error(), "io error: writing out.csv")
	})
	t.Run("wrap nil is nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.Parse, "ignored"))
	})
	t.Run("uncoded errors report zero", func(t *testing.T) {
		err := fmt.Errorf("plain failure")
		assert.Equal(t, errors.Code(0), errors.CodeOf(err))
		assert.False(t, errors.Is(err, errors.Validation))
	})
	t.Run("code names", func(t *testing.T) {
		assert.Equal(t, "parse", errors.Parse.String())
		assert.Equal(t, "state", errors.State.String())
		assert.Equal(t, "io", errors.IO.String())
		assert.Equal(t, "validation", errors.Validation.String())
		assert.Equal(t, "unknown", errors.Code(99).String())
	})
}
