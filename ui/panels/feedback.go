package panels

import (
	"sync"
	"time"
)

// CopiedTimeout is how long a copy button keeps showing its confirmation.
const CopiedTimeout = 1500 * time.Millisecond

// FeedbackState is the visual state of a copy button.
type FeedbackState int

const (
	FeedbackIdle FeedbackState = iota
	FeedbackHovering
	FeedbackCopied
)

func (s FeedbackState) String() string {
	switch s {
	case FeedbackHovering:
		return "hovering"
	case FeedbackCopied:
		return "copied"
	default:
		return "idle"
	}
}

// CopyFeedback drives the Idle -> Hovering -> Copied -> Idle cycle of a copy
// button. Copied expires after CopiedTimeout, or immediately when the pointer
// leaves.
type CopyFeedback struct {
	mu      sync.Mutex
	state   FeedbackState
	hovered bool
	gen     int // bumped on every click so stale timers are ignored

	afterFunc func(d time.Duration, f func())
	onChange  func(FeedbackState)
}

// NewCopyFeedback creates an idle machine. onChange, if set, is called after
// every transition, possibly from a timer goroutine.
func NewCopyFeedback(onChange func(FeedbackState)) *CopyFeedback {
	return &CopyFeedback{
		onChange: onChange,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// State returns the current state.
func (f *CopyFeedback) State() FeedbackState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Enter records the pointer moving over the button.
func (f *CopyFeedback) Enter() {
	f.mu.Lock()
	f.hovered = true
	changed := f.state == FeedbackIdle
	if changed {
		f.state = FeedbackHovering
	}
	f.mu.Unlock()
	if changed {
		f.notify(FeedbackHovering)
	}
}

// Leave records the pointer leaving the button; any confirmation is dropped.
func (f *CopyFeedback) Leave() {
	f.mu.Lock()
	f.hovered = false
	changed := f.state != FeedbackIdle
	f.state = FeedbackIdle
	f.mu.Unlock()
	if changed {
		f.notify(FeedbackIdle)
	}
}

// Click shows the confirmation and schedules its expiry.
func (f *CopyFeedback) Click() {
	f.mu.Lock()
	f.state = FeedbackCopied
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	f.notify(FeedbackCopied)
	f.afterFunc(CopiedTimeout, func() { f.expire(gen) })
}

func (f *CopyFeedback) expire(gen int) {
	f.mu.Lock()
	if gen != f.gen || f.state != FeedbackCopied {
		f.mu.Unlock()
		return
	}
	next := FeedbackIdle
	if f.hovered {
		next = FeedbackHovering
	}
	f.state = next
	f.mu.Unlock()
	f.notify(next)
}

func (f *CopyFeedback) notify(s FeedbackState) {
	if f.onChange != nil {
		f.onChange(s)
	}
}
