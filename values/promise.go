package values

import (
	"sync"

	"github.com/google/uuid"
	"github.com/lumenscript/lumen/asyncrt"
)

// PromiseState is the three-state promise lifecycle: a Promise starts
// Pending and transitions at most once to a terminal state.
type PromiseState int

const (
	Pending PromiseState = iota
	Fulfilled
	Rejected
)

// Promise is a first-class handle to the eventual result of an
// asynchronous computation, backed by an asyncrt.Task. The
// Pending→Fulfilled/Rejected transition is observed — not driven — by
// this type: the underlying Task is the single source of truth, and
// Promise.Resolve reads it exactly once per caller via Task.Wait, which
// is itself idempotent.
type Promise struct {
	ID   uuid.UUID
	task *asyncrt.Task

	mu       sync.Mutex
	state    PromiseState
	value    Value
	rejected error
}

// NewPromise wraps a submitted asyncrt.Task as a Lumen Promise.
func NewPromise(task *asyncrt.Task) *Promise {
	return &Promise{ID: uuid.New(), task: task, state: Pending}
}

func (*Promise) Kind() Kind { return KindPromise }

func (p *Promise) String() string {
	switch p.State() {
	case Fulfilled:
		return "<promise fulfilled>"
	case Rejected:
		return "<promise rejected>"
	default:
		return "<promise pending>"
	}
}

// State reports the promise's last-observed state without blocking. A
// Pending result can go stale immediately if another goroutine is
// awaiting the same promise concurrently — callers that need the
// terminal value must use Resolve.
func (p *Promise) State() PromiseState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Resolve blocks the calling goroutine until the backing task completes,
// then returns the fulfilled Value or the rejection error — idempotently:
// a Promise already Fulfilled/Rejected returns immediately without
// re-blocking. This is the only path `await` uses.
func (p *Promise) Resolve() (Value, error) {
	result, err := p.task.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Pending {
		if p.state == Rejected {
			return nil, p.rejected
		}
		return p.value, nil
	}
	if err != nil {
		p.state = Rejected
		p.rejected = err
		return nil, err
	}
	v, _ := result.(Value)
	if v == nil {
		v = NilValue
	}
	p.state = Fulfilled
	p.value = v
	return v, nil
}
