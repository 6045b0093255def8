package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CopyButton puts a fixed text on the clipboard and confirms it briefly.
type CopyButton struct {
	widget.Button

	clipboard fyne.Clipboard
	content   string
	feedback  *CopyFeedback
}

// NewCopyButton creates a button copying content to clipboard.
func NewCopyButton(clipboard fyne.Clipboard, content string) *CopyButton {
	b := &CopyButton{
		clipboard: clipboard,
		content:   content,
	}
	b.Icon = theme.ContentCopyIcon()
	b.Importance = widget.LowImportance
	b.OnTapped = b.copy
	b.feedback = NewCopyFeedback(b.show)
	b.ExtendBaseWidget(b)
	return b
}

// SetContent replaces the text placed on the clipboard.
func (b *CopyButton) SetContent(content string) {
	b.content = content
}

// Content returns the text placed on the clipboard.
func (b *CopyButton) Content() string {
	return b.content
}

// Feedback exposes the hover/copied state machine.
func (b *CopyButton) Feedback() *CopyFeedback {
	return b.feedback
}

func (b *CopyButton) MouseIn(ev *desktop.MouseEvent) {
	b.Button.MouseIn(ev)
	b.feedback.Enter()
}

func (b *CopyButton) MouseOut() {
	b.Button.MouseOut()
	b.feedback.Leave()
}

func (b *CopyButton) copy() {
	if b.clipboard != nil {
		b.clipboard.SetContent(b.content)
	}
	b.feedback.Click()
}

func (b *CopyButton) show(s FeedbackState) {
	switch s {
	case FeedbackCopied:
		b.Icon = theme.ConfirmIcon()
		b.Text = "copied"
		b.Importance = widget.SuccessImportance
	case FeedbackHovering:
		b.Icon = theme.ContentCopyIcon()
		b.Text = ""
		b.Importance = widget.MediumImportance
	default:
		b.Icon = theme.ContentCopyIcon()
		b.Text = ""
		b.Importance = widget.LowImportance
	}
	b.Refresh()
}
