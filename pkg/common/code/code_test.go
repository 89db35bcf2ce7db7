package code

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithErrKeepsIdentity(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	wrapped := StoreUnavailableErr.WithErr(cause)

	assert.True(t, errors.Is(wrapped, StoreUnavailableErr))
	assert.ErrorContains(t, wrapped, "connection refused")

	// the package-level value must stay untouched
	assert.NotContains(t, StoreUnavailableErr.Error(), "connection refused")
}

func TestWithMsgKeepsIdentity(t *testing.T) {
	err := ParamErr.WithMsg("limit must not be negative")
	assert.True(t, errors.Is(err, ParamErr))
	assert.False(t, errors.Is(err, RecordNotFound))
	assert.ErrorContains(t, err, "limit must not be negative")
}
