package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
)

var errNotYet = errors.New("solver: goal not reached")

func noDelay(uint, error, *retry.Config) time.Duration { return 0 }

// bounded runs step until it reports done, at most attempts times, and
// returns the number of attempts used. A step error stops the loop and is
// returned unchanged; running out of attempts returns ErrRetryExhausted.
func bounded(attempts uint, step func() (bool, error)) (uint, error) {
	var (
		calls   uint
		stepErr error
	)
	used, err := retry.DoWithData(
		func() (uint, error) {
			calls++
			done, err := step()
			if err != nil {
				stepErr = err
				return calls, retry.Unrecoverable(err)
			}
			if !done {
				return calls, errNotYet
			}
			return calls, nil
		},
		retry.Attempts(attempts),
		retry.DelayType(noDelay),
		retry.LastErrorOnly(true),
	)
	if stepErr != nil {
		return calls, stepErr
	}
	if err != nil {
		return calls, fmt.Errorf("%w after %d attempts", ErrRetryExhausted, calls)
	}
	return used, nil
}
