package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ninecards/storefront/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func fastRetryConfig(attempts int) utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Microsecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetryConfig(3), func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_RecoversAfterFailure(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetryConfig(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("still broken")

	calls := 0
	err := utils.Retry(fastRetryConfig(4), func() error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 4, calls)
}

func TestRetry_StopErrorIsPermanent(t *testing.T) {
	permanent := errors.New("not found")

	calls := 0
	err := utils.Retry(fastRetryConfig(5), func() error {
		calls++
		return permanent
	}, permanent)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
