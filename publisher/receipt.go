package publisher

import (
	"context"
	"sync"
)

// Receipt is the single-assignment result of one asynchronous publish
// call. It resolves exactly once; observers attach through Wait, Done,
// Then, and Catch in any combination and in any order relative to
// completion.
type Receipt struct {
	done chan struct{}

	mu        sync.Mutex
	resolved  bool
	err       error
	onSuccess []func()
	onFailure []func(error)
}

func newReceipt() *Receipt {
	return &Receipt{done: make(chan struct{})}
}

// resolve records the outcome and fires registered callbacks. Called
// exactly once, from the publishing goroutine.
func (r *Receipt) resolve(err error) {
	r.mu.Lock()
	r.resolved = true
	r.err = err
	success := r.onSuccess
	failure := r.onFailure
	r.onSuccess = nil
	r.onFailure = nil
	close(r.done)
	r.mu.Unlock()

	if err == nil {
		for _, fn := range success {
			fn()
		}
		return
	}
	for _, fn := range failure {
		fn(err)
	}
}

// Wait blocks until the publish completes or the context is done. It
// returns nil on success, the *errors.PublishError (or build error) on
// failure, and the context's error when the wait itself is abandoned.
func (r *Receipt) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed when the publish completes.
func (r *Receipt) Done() <-chan struct{} {
	return r.done
}

// Err returns the outcome. It is nil until Done is closed and nil after
// a successful publish.
func (r *Receipt) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Then registers a callback invoked once if the publish succeeds. When
// the receipt is already resolved successfully the callback runs
// immediately on the calling goroutine; otherwise it runs on the
// publishing goroutine.
func (r *Receipt) Then(fn func()) *Receipt {
	r.mu.Lock()
	if !r.resolved {
		r.onSuccess = append(r.onSuccess, fn)
		r.mu.Unlock()
		return r
	}
	err := r.err
	r.mu.Unlock()

	if err == nil {
		fn()
	}
	return r
}

// Catch registers a callback invoked once with the failure if the publish
// fails. Placement mirrors Then.
func (r *Receipt) Catch(fn func(error)) *Receipt {
	r.mu.Lock()
	if !r.resolved {
		r.onFailure = append(r.onFailure, fn)
		r.mu.Unlock()
		return r
	}
	err := r.err
	r.mu.Unlock()

	if err != nil {
		fn(err)
	}
	return r
}
