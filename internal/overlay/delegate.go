package overlay

// Delegate receives the controller's outbound notifications. The host view
// decides what committed text, return/clear/cancel and paste-and-go actually
// mean for the application.
type Delegate interface {
	// OnTextEntered fires after the debounce quiet period with the
	// normalized text at fire time.
	OnTextEntered(normalized string)
	// ShouldReturn reports whether the host should act on a return key.
	ShouldReturn() bool
	// ShouldClear reports whether the host should clear the field.
	ShouldClear() bool
	// OnBeginEditing fires when the user starts interacting with the field.
	OnBeginEditing()
	// OnCancel fires on an explicit cancel gesture.
	OnCancel()
	// OnPasteAndGo fires when the user requests paste-and-go.
	OnPasteAndGo()
}

// DelegateFuncs adapts plain functions to the Delegate interface. Nil fields
// fall back to no-ops, with ShouldReturn and ShouldClear defaulting to true.
type DelegateFuncs struct {
	TextEntered func(string)
	Return      func() bool
	Clear       func() bool
	BeginEdit   func()
	Cancel      func()
	PasteAndGo  func()
}

func (d DelegateFuncs) OnTextEntered(normalized string) {
	if d.TextEntered != nil {
		d.TextEntered(normalized)
	}
}

func (d DelegateFuncs) ShouldReturn() bool {
	if d.Return != nil {
		return d.Return()
	}
	return true
}

func (d DelegateFuncs) ShouldClear() bool {
	if d.Clear != nil {
		return d.Clear()
	}
	return true
}

func (d DelegateFuncs) OnBeginEditing() {
	if d.BeginEdit != nil {
		d.BeginEdit()
	}
}

func (d DelegateFuncs) OnCancel() {
	if d.Cancel != nil {
		d.Cancel()
	}
}

func (d DelegateFuncs) OnPasteAndGo() {
	if d.PasteAndGo != nil {
		d.PasteAndGo()
	}
}
