// File: api/poll.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Poll/waker machinery for cooperatively scheduled futures.

package api

// Poll reports the outcome of polling a future once.
type Poll uint8

const (
	// Pending means the future has not finished; it arranged (or will be
	// given) a wake-up before it is polled again.
	Pending Poll = iota
	// Ready means the future produced its output.
	Ready
)

// Waker marks a suspended task as ready to be polled again.
type Waker interface {
	// Wake moves the owning task back onto the ready queue. Waking an
	// already-queued or finished task is a no-op.
	Wake()

	// WillWake reports whether other would wake the same task as this
	// waker. Used by the reactor to avoid duplicate registrations when a
	// timed future is polled repeatedly by the same task.
	WillWake(other Waker) bool
}

// Context carries the waker of the poll in progress, plus the cancellation
// flag delivered on a task's final teardown poll.
type Context struct {
	waker     Waker
	cancelled bool
}

// NewContext builds a poll context around a waker.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// NewCancelContext builds the context delivered on the single teardown poll
// a cancelled task receives before it is discarded.
func NewCancelContext(w Waker) *Context {
	return &Context{waker: w, cancelled: true}
}

// Waker returns the waker of the task being polled.
func (c *Context) Waker() Waker { return c.waker }

// Cancelled reports whether this is a teardown poll. A future observing
// true must release any held resources (lock guards, reserved slots) and
// return Ready; its output is discarded.
func (c *Context) Cancelled() bool { return c.cancelled }

// Future is a resumable unit of work driven by the executor. A call to Poll
// either produces the output together with Ready, or returns Pending after
// ensuring the context's waker will fire when progress becomes possible.
type Future[T any] interface {
	Poll(cx *Context) (T, Poll)
}

// FutureFunc adapts a plain poll function to the Future interface.
type FutureFunc[T any] func(cx *Context) (T, Poll)

// Poll implements Future.
func (f FutureFunc[T]) Poll(cx *Context) (T, Poll) { return f(cx) }
