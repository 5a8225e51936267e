//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"course-booking-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_SentinelVisibleToStdlibErrorsIs(t *testing.T) {
	cause := errors.New("connection lost")

	marked := errs.Mark(cause, errs.ErrStorageFailure)

	require.ErrorIs(t, marked, errs.ErrStorageFailure)
	require.ErrorIs(t, marked, cause)
	assert.Contains(t, marked.Error(), "connection lost")
}

func TestMark_WrappedCauseKeepsSentinel(t *testing.T) {
	cause := errs.Wrap(errors.New("boom"), "failed to insert order")

	marked := errs.Mark(cause, errs.ErrStorageFailure)

	require.ErrorIs(t, marked, errs.ErrStorageFailure)
	assert.Contains(t, marked.Error(), "failed to insert order")
}

func TestMark_NilErrReturnsSentinel(t *testing.T) {
	marked := errs.Mark(nil, errs.ErrStorageFailure)

	require.ErrorIs(t, marked, errs.ErrStorageFailure)
}

func TestMark_DoesNotMatchOtherSentinels(t *testing.T) {
	marked := errs.Mark(errors.New("boom"), errs.ErrStorageFailure)

	assert.NotErrorIs(t, marked, errs.ErrInvalidName)
}
