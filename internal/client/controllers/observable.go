package controllers

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

// observable is the state every controller shares: the loading flag, the
// last error text and the subscriber list. Controllers embed it and guard
// their own fields with mu.
type observable struct {
	mu      sync.Mutex
	loading bool
	errMsg  string

	log logging.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func (o *observable) init(log logging.Logger, name string) {
	if log == nil {
		log = logging.Nop()
	}
	o.log = log.With("controller", name)
}

func (o *observable) IsLoading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

// ErrorMessage returns the display text of the last failure, "" if the last
// operation succeeded.
func (o *observable) ErrorMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.errMsg
}

// Subscribe registers fn to be called after every state change. fn runs on
// the goroutine that changed the state, with no lock held.
func (o *observable) Subscribe(fn func()) (unsubscribe func()) {
	o.subMu.Lock()
	defer o.subMu.Unlock()

	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.nextSub
	o.nextSub++
	o.subs[id] = fn

	return func() {
		o.subMu.Lock()
		defer o.subMu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observable) notify() {
	o.subMu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// begin marks an operation as started and clears the previous error.
func (o *observable) begin() {
	o.mu.Lock()
	o.loading = true
	o.errMsg = ""
	o.mu.Unlock()
	o.notify()
}

// finish ends an operation. On success apply runs under mu; on failure the
// error text is recorded and domain state is left as it was.
func (o *observable) finish(ctx context.Context, err error, apply func()) {
	o.mu.Lock()
	o.loading = false
	o.settleLocked(ctx, err, apply)
	o.mu.Unlock()
	o.notify()
}

// settle is finish without touching the loading flag.
func (o *observable) settle(ctx context.Context, err error, apply func()) {
	o.mu.Lock()
	o.settleLocked(ctx, err, apply)
	o.mu.Unlock()
	o.notify()
}

func (o *observable) settleLocked(ctx context.Context, err error, apply func()) {
	if err != nil {
		o.errMsg = client.DisplayMessage(err)
		o.log.Debug(ctx, "operation failed", "error", err)
		return
	}
	if apply != nil {
		apply()
	}
}
