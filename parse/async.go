package parse

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/xj/ir"
)

// Future is the pending result of a conversion running on its own
// goroutine.
type Future struct {
	ready chan struct{}
	node  *ir.Node
	err   error
}

func newFuture(task func() (*ir.Node, error)) *Future {
	f := &Future{ready: make(chan struct{})}
	var g errgroup.Group
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
			}
		}()
		f.node, err = task()
		return err
	})
	go func() {
		f.err = g.Wait()
		if f.err != nil {
			f.node = nil
		}
		close(f.ready)
	}()
	return f
}

func failedFuture(err error) *Future {
	f := &Future{ready: make(chan struct{}), err: err}
	close(f.ready)
	return f
}

// Done reports whether the conversion has finished.  It does not block.
func (f *Future) Done() bool {
	select {
	case <-f.ready:
		return true
	default:
		return false
	}
}

// Ready returns a channel which is closed when the conversion finishes.
func (f *Future) Ready() <-chan struct{} {
	return f.ready
}

// Wait blocks until the conversion finishes and returns its result.
func (f *Future) Wait() (*ir.Node, error) {
	<-f.ready
	return f.node, f.err
}

// WaitContext is Wait which gives up waiting when ctx is done.  The
// conversion itself keeps running and its result stays available through
// Wait.
func (f *Future) WaitContext(ctx context.Context) (*ir.Node, error) {
	select {
	case <-f.ready:
		return f.node, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ParseAsync runs Parse on its own goroutine.  Precondition failures are
// reported by the returned Future, which is then already done.
func ParseAsync(r io.Reader, opts ...ParseOption) *Future {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return failedFuture(err)
	}
	return newFuture(func() (*ir.Node, error) {
		return parse(r, o)
	})
}

func ParseStringAsync(s string, opts ...ParseOption) *Future {
	return ParseAsync(strings.NewReader(s), opts...)
}

func ParseAtAsync(r io.Reader, ptr string, opts ...ParseOption) *Future {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return failedFuture(err)
	}
	return newFuture(func() (*ir.Node, error) {
		return ParseAt(r, ptr, opts...)
	})
}

func ReplaceAtAsync(r io.Reader, ptr string, v *ir.Node, opts ...ParseOption) *Future {
	o := getOpts(opts)
	if err := check(r, o); err != nil {
		return failedFuture(err)
	}
	return newFuture(func() (*ir.Node, error) {
		return ReplaceAt(r, ptr, v, opts...)
	})
}

func ParseRenamedAsync(r io.Reader, rename func(string) string, opts ...ParseOption) *Future {
	return ParseAsync(r, slices.Concat(opts, []ParseOption{RenameKeys(rename)})...)
}
