package chat

// View is the presentation surface the controller drives: a transcript
// container, an input field and the language-dependent controls.
//
// The controller calls View methods while holding its own lock, so
// implementations must not call back into the Controller.
type View interface {
	AppendTurn(t Turn)
	ShowPending(p PendingIndicator)
	RemovePending(p PendingIndicator)
	ClearInput()
	Render(p Presentation)
}
