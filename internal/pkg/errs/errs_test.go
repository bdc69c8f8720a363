//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"resource-form/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches reference and keeps its message", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")

		err := errs.Mark(errs.Wrap(cause, "echo request failed"), errs.ErrNetwork)

		assert.True(t, errs.Is(err, errs.ErrNetwork))
		assert.True(t, errs.Is(err, cause))
		assert.Contains(t, err.Error(), "echo request failed")
		assert.Contains(t, err.Error(), "connection refused")
		assert.NotContains(t, err.Error(), errs.ErrNetwork.Error())
	})

	t.Run("unrelated reference does not match", func(t *testing.T) {
		err := errs.Mark(errors.New("boom"), errs.ErrNetwork)

		assert.False(t, errs.Is(err, errs.ErrServerResponse))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Mark(nil, errs.ErrNetwork))
	})
}
