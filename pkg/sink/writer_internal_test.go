package sink

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFail_ReportsAcceptedNotDurable(t *testing.T) {
	t.Parallel()

	w := &Writer{written: 42}
	err := w.fail(io.ErrClosedPipe)

	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, io.ErrClosedPipe)
	assert.Contains(t, err.Error(), "after 42 names accepted")
	assert.NotContains(t, err.Error(), "durable")
}

func TestFail_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := (&Writer{}).fail(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "after 0 names accepted")
}
