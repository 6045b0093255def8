package panels

import (
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"hexpick/internal/app"
	"hexpick/internal/output"
	"hexpick/pkg/colorutil"
)

// manualTimer captures scheduled expiries so tests can fire them.
type manualTimer struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (m *manualTimer) after(d time.Duration, f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays = append(m.delays, d)
	m.pending = append(m.pending, f)
}

func (m *manualTimer) fire(i int) {
	m.mu.Lock()
	f := m.pending[i]
	m.mu.Unlock()
	f()
}

func newTestFeedback() (*CopyFeedback, *manualTimer, *[]FeedbackState) {
	timer := &manualTimer{}
	var seen []FeedbackState
	f := NewCopyFeedback(func(s FeedbackState) { seen = append(seen, s) })
	f.afterFunc = timer.after
	return f, timer, &seen
}

func TestCopyFeedbackCycle(t *testing.T) {
	f, timer, seen := newTestFeedback()

	if f.State() != FeedbackIdle {
		t.Fatalf("initial state = %v", f.State())
	}
	f.Enter()
	if f.State() != FeedbackHovering {
		t.Fatalf("after Enter = %v, want hovering", f.State())
	}
	f.Click()
	if f.State() != FeedbackCopied {
		t.Fatalf("after Click = %v, want copied", f.State())
	}
	if len(timer.delays) != 1 || timer.delays[0] != CopiedTimeout {
		t.Fatalf("scheduled delays = %v, want [%v]", timer.delays, CopiedTimeout)
	}

	timer.fire(0)
	if f.State() != FeedbackHovering {
		t.Errorf("after timeout while hovered = %v, want hovering", f.State())
	}

	f.Leave()
	if f.State() != FeedbackIdle {
		t.Errorf("after Leave = %v, want idle", f.State())
	}

	want := []FeedbackState{FeedbackHovering, FeedbackCopied, FeedbackHovering, FeedbackIdle}
	if len(*seen) != len(want) {
		t.Fatalf("transitions = %v, want %v", *seen, want)
	}
	for i := range want {
		if (*seen)[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, (*seen)[i], want[i])
		}
	}
}

func TestCopyFeedbackLeaveClearsCopied(t *testing.T) {
	f, timer, _ := newTestFeedback()

	f.Enter()
	f.Click()
	f.Leave()
	if f.State() != FeedbackIdle {
		t.Fatalf("after Leave = %v, want idle", f.State())
	}

	// The pending expiry must not resurrect anything.
	timer.fire(0)
	if f.State() != FeedbackIdle {
		t.Errorf("stale expiry changed state to %v", f.State())
	}
}

func TestCopyFeedbackStaleTimerIgnored(t *testing.T) {
	f, timer, _ := newTestFeedback()

	f.Enter()
	f.Click()
	f.Click()

	timer.fire(0)
	if f.State() != FeedbackCopied {
		t.Errorf("first expiry ended a newer confirmation: %v", f.State())
	}
	timer.fire(1)
	if f.State() != FeedbackHovering {
		t.Errorf("second expiry = %v, want hovering", f.State())
	}
}

func TestCopyButtonSetsClipboard(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	b := NewCopyButton(w.Clipboard(), "#cc85c5")
	b.feedback.afterFunc = func(time.Duration, func()) {}
	w.SetContent(b)

	test.Tap(b)
	if got := w.Clipboard().Content(); got != "#cc85c5" {
		t.Errorf("clipboard = %q, want #cc85c5", got)
	}
	if b.Text != "copied" {
		t.Errorf("button text = %q, want copied", b.Text)
	}
}

func TestOutputPanelFollowsState(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, widget.NewLabel(""))

	state := app.NewState(colorutil.BlackColor)
	op := NewOutputPanel(state, w.Clipboard())
	fs := NewFormatSelector(state)

	if err := state.SetHex("#ff0000"); err != nil {
		t.Fatal(err)
	}
	shown := op.Shown()
	if shown[2] != "rgb(255  , 0   , 0   )" {
		t.Errorf("rgb row = %q", shown[2])
	}
	if got := op.CopyButton(0).Content(); got != "hsl(0, 100%, 50%)" {
		t.Errorf("hsl copy content = %q", got)
	}

	test.Tap(fs.Button(output.Structured))
	if state.Format() != output.Structured {
		t.Fatalf("format = %v, want structured", state.Format())
	}
	if got := op.Shown()[3]; got != `hex("#ff0000")` {
		t.Errorf("hex row = %q", got)
	}
	if fs.Button(output.Structured).Importance != widget.HighImportance {
		t.Error("selected format button is not highlighted")
	}
}

func TestColorPanelApply(t *testing.T) {
	test.NewTempApp(t)

	state := app.NewState(colorutil.BlackColor)
	cp := NewColorPanel(state, nil)

	cp.Apply("#3366cc")
	if got := state.Color().Hex(); got != "#3366cc" {
		t.Fatalf("color = %s, want #3366cc", got)
	}
	if cp.Entry().Text != "#3366cc" {
		t.Errorf("entry = %q", cp.Entry().Text)
	}
	if cp.Swatch().FillColor != state.Color().NRGBA() {
		t.Errorf("swatch = %v", cp.Swatch().FillColor)
	}

	cp.Apply("#zzz")
	if got := state.Color().Hex(); got != "#3366cc" {
		t.Errorf("invalid input changed color to %s", got)
	}
	if cp.Entry().Text != "#3366cc" {
		t.Errorf("entry not restored after invalid input: %q", cp.Entry().Text)
	}
}
