// Package overlay implements the autocomplete overlay state machine for a
// browser-style address field. The controller owns the user's entered text,
// an optional suggested completion rendered after it as ghost text, and the
// caret position. A host input view forwards its edit and navigation events
// to the controller and renders whatever state results.
package overlay

import (
	"strings"
	"unicode"
)

// Controller is the autocomplete overlay state machine. It is single
// threaded: the host owns it exclusively and calls it from its event loop.
type Controller struct {
	delegate Delegate
	sched    Scheduler

	text       string // what the user typed, overlay excluded
	completion string // ghost suffix shown after text, "" when inactive
	cursor     int    // rune offset into text

	cursorHidden    bool
	composing       bool
	lastReplacement bool // last mutation was a keyboard replace-range edit
	showClear       bool
}

// New creates a controller. delegate may be nil (notifications are dropped,
// Should* decisions default to true). sched may be nil, in which case
// debounced notifications fire immediately.
func New(delegate Delegate, sched Scheduler) *Controller {
	return &Controller{delegate: delegate, sched: sched}
}

// Normalize lowercases s and strips leading whitespace. All prefix
// comparisons between entered text and suggestions go through this.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// Text returns the entered text, overlay excluded.
func (c *Controller) Text() string { return c.text }

// Completion returns the ghost suffix currently overlaid, "" when none.
func (c *Controller) Completion() string { return c.completion }

// OverlayActive reports whether a suggestion overlay is showing.
func (c *Controller) OverlayActive() bool { return c.completion != "" }

// Cursor returns the caret position as a rune offset into Text.
func (c *Controller) Cursor() int { return c.cursor }

// CursorHidden reports whether the host should suppress the caret.
func (c *Controller) CursorHidden() bool { return c.cursorHidden }

// Composing reports whether an IME composition is in progress.
func (c *Controller) Composing() bool { return c.composing }

// ShowClear reports whether the clear affordance should be visible.
func (c *Controller) ShowClear() bool { return c.showClear }

// LastEditWasReplacement reports whether the most recent text mutation was a
// keyboard replace-range edit rather than a programmatic assignment.
func (c *Controller) LastEditWasReplacement() bool { return c.lastReplacement }

// Normalized returns the normalized entered text.
func (c *Controller) Normalized() string { return Normalize(c.text) }

// SetSuggestion attempts to display suggestion as a ghost overlay after the
// entered text. An empty suggestion means "no suggestion". The overlay is
// only shown when the normalized entered text is a strict prefix of the
// suggestion and no composition is in progress; anything else clears any
// overlay already showing, so a stale suggestion never lingers when the
// user swipes between differently-suggested results.
func (c *Controller) SetSuggestion(suggestion string) {
	if c.composing || suggestion == "" {
		c.cursorHidden = false
		return
	}

	norm := []rune(Normalize(c.text))
	sug := []rune(suggestion)
	if len(norm) >= len(sug) || !strings.HasPrefix(suggestion, string(norm)) {
		c.RemoveCompletion()
		c.cursorHidden = false
		return
	}

	c.completion = string(sug[len(norm):])
	c.cursorHidden = true
	// Force the caret to the end so the visibility query re-evaluates.
	c.cursor = c.textLen()
	c.showClear = c.text == ""
}

// ApplyCompletion commits the overlay into the entered text. Calling it
// again with no intervening suggestion is a no-op.
func (c *Controller) ApplyCompletion() {
	c.text += c.completion
	removed := c.RemoveCompletion()
	c.cursorHidden = false
	if removed {
		c.cursor = c.textLen()
	}
}

// RemoveCompletion clears the overlay without touching the entered text.
// It reports whether an overlay was actually showing.
func (c *Controller) RemoveCompletion() bool {
	if c.completion == "" {
		return false
	}
	c.completion = ""
	return true
}

// InsertText performs a keyboard replace-range edit at the caret and runs
// the text-changed path. This is the entry point for typed characters.
func (c *Controller) InsertText(s string) {
	if s == "" {
		return
	}
	runes := []rune(c.text)
	c.clampCursor()
	out := make([]rune, 0, len(runes)+len(s))
	out = append(out, runes[:c.cursor]...)
	out = append(out, []rune(s)...)
	out = append(out, runes[c.cursor:]...)
	c.text = string(out)
	c.cursor += len([]rune(s))
	c.OnTextChanged(true, c.cursor == c.textLen(), c.composing)
}

// OnTextChanged runs after any raw text mutation. Every edit invalidates the
// previous suggestion, and a debounced delegate notification is scheduled so
// a burst of keystrokes produces a single downstream search.
func (c *Controller) OnTextChanged(keyboardOriginated, cursorAtEnd, compositionActive bool) {
	c.cursorHidden = c.completion != ""
	c.RemoveCompletion()
	c.composing = compositionActive
	c.lastReplacement = keyboardOriginated

	if keyboardOriginated && cursorAtEnd && !compositionActive {
		c.scheduleTextEntered()
	} else {
		// Same notification either way; only the caret state differs.
		c.cursorHidden = false
		c.scheduleTextEntered()
	}
}

// SetTextWithoutSearching assigns the entered text directly, bypassing the
// debounced notification path. Used for programmatic resets such as
// restoring a prior query.
func (c *Controller) SetTextWithoutSearching(text string) {
	c.cursorHidden = c.completion != ""
	c.RemoveCompletion()
	c.text = text
	c.lastReplacement = false
	c.cursor = c.textLen()
}

// HandleLeftEdge handles leftward navigation input. With an overlay showing
// it commits the overlay and moves the caret to the start of the full text;
// otherwise it moves the caret one rune left, stopping at the boundary.
func (c *Controller) HandleLeftEdge() {
	if c.OverlayActive() {
		c.ApplyCompletion()
		c.cursor = 0
		return
	}
	if c.cursor > 0 {
		c.cursor--
	}
}

// HandleRightEdge handles rightward navigation input, mirroring
// HandleLeftEdge with the caret ending at the end of the full text.
func (c *Controller) HandleRightEdge() {
	if c.OverlayActive() {
		c.ApplyCompletion()
		return
	}
	if c.cursor < c.textLen() {
		c.cursor++
	}
}

// HandleDeleteBackward handles a backward deletion. With an overlay showing,
// the deletion is consumed by dismissing the suggestion and the entered text
// is untouched; otherwise one rune before the caret is deleted.
func (c *Controller) HandleDeleteBackward() {
	c.lastReplacement = false
	c.cursorHidden = false
	if c.RemoveCompletion() {
		c.cursor = c.textLen()
		return
	}
	if c.cursor == 0 {
		return
	}
	runes := []rune(c.text)
	c.text = string(runes[:c.cursor-1]) + string(runes[c.cursor:])
	c.cursor--
	c.OnTextChanged(false, c.cursor == c.textLen(), c.composing)
}

// HandleCommitGesture commits any active overlay before the host input
// handles a direct interaction, so a tap always lands on committed text.
func (c *Controller) HandleCommitGesture() {
	c.ApplyCompletion()
}

// HandleBeginEditing notifies the delegate that the user started editing.
func (c *Controller) HandleBeginEditing() {
	if c.delegate != nil {
		c.delegate.OnBeginEditing()
	}
}

// HandleCancel forwards a cancel request to the delegate. The controller's
// own state is untouched.
func (c *Controller) HandleCancel() {
	if c.delegate != nil {
		c.delegate.OnCancel()
	}
}

// HandlePasteAndGo forwards a paste-and-go request to the delegate.
func (c *Controller) HandlePasteAndGo() {
	if c.delegate != nil {
		c.delegate.OnPasteAndGo()
	}
}

// ShouldReturn commits the overlay, then defers the decision to the
// delegate, defaulting to true.
func (c *Controller) ShouldReturn() bool {
	c.ApplyCompletion()
	if c.delegate != nil {
		return c.delegate.ShouldReturn()
	}
	return true
}

// ShouldClear removes the overlay, then defers the decision to the
// delegate, defaulting to true.
func (c *Controller) ShouldClear() bool {
	c.RemoveCompletion()
	if c.delegate != nil {
		return c.delegate.ShouldClear()
	}
	return true
}

// OnCompositionWillBegin must be called before IME composition starts.
// Overlays and composition are mutually exclusive.
func (c *Controller) OnCompositionWillBegin() {
	c.RemoveCompletion()
	c.composing = true
	c.cursorHidden = false
}

// OnCompositionEnded must be called after IME composition finishes.
func (c *Controller) OnCompositionEnded() {
	c.composing = false
}

func (c *Controller) scheduleTextEntered() {
	if c.delegate == nil {
		return
	}
	notify := func() { c.delegate.OnTextEntered(c.Normalized()) }
	if c.sched == nil {
		notify()
		return
	}
	c.sched.Schedule(notify)
}

func (c *Controller) textLen() int {
	return len([]rune(c.text))
}

func (c *Controller) clampCursor() {
	if n := c.textLen(); c.cursor > n {
		c.cursor = n
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}
