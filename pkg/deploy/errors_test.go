package deploy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRPCError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, classifyRPCError(nil))
	})

	fatals := map[string]string{
		"insufficient balance": "insufficient funds for gas * price + value",
		"revert":               "execution reverted: ERC20: mint to the zero address",
		"bad signature":        "invalid sender",
		"rpc error":            "method eth_sendRawTransaction does not exist",
	}
	for reason, msg := range fatals {
		t.Run("fatal "+reason, func(t *testing.T) {
			classified := classifyRPCError(errors.New(msg))
			var fatal *FatalError
			require.ErrorAs(t, classified, &fatal)
			assert.Equal(t, reason, fatal.Reason)
			assert.False(t, IsTransient(classified))
		})
	}

	transients := []string{
		"nonce too low",
		"replacement transaction underpriced",
		"Post \"https://rpc\": context deadline exceeded (Client.Timeout exceeded)",
		"read tcp: connection reset by peer",
		"dial tcp: connection refused",
		"429 Too Many Requests",
		"502 Bad Gateway",
		"rate limit exceeded",
	}
	for _, msg := range transients {
		t.Run("transient "+msg[:12], func(t *testing.T) {
			classified := classifyRPCError(errors.New(msg))
			assert.True(t, IsTransient(classified), "expected transient: %s", msg)
		})
	}

	t.Run("context deadline is transient", func(t *testing.T) {
		assert.True(t, IsTransient(classifyRPCError(context.DeadlineExceeded)))
	})

	t.Run("transient detection sees through wrapping", func(t *testing.T) {
		wrapped := &GasEstimationError{Err: &TransientError{Err: errors.New("timeout")}}
		assert.True(t, IsTransient(wrapped))
	})
}
